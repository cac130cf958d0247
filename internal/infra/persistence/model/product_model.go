// Package model contains the GORM persistence models mirroring the MySQL
// schema. Models are mapped to and from pure domain entities at the
// repository boundary.
package model

// ProductModel mirrors the 'products' table. MySQL assigns identifiers via
// AUTO_INCREMENT.
type ProductModel struct {
	ID    int     `gorm:"primaryKey;autoIncrement"`
	Title string  `gorm:"type:text;not null"`
	Price float64 `gorm:"type:decimal(10,2);not null"`
	About string  `gorm:"type:text"`
	Image string  `gorm:"type:text"`
	Cat   string  `gorm:"type:varchar(64);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
