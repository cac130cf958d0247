package model

// AdminAccessModel mirrors the 'adminaccess' table, which holds exactly one
// row with the bcrypt hash of the admin password. The historical column name
// 'passwerd' is kept for schema compatibility.
type AdminAccessModel struct {
	ID       int    `gorm:"primaryKey"`
	Passwerd string `gorm:"column:passwerd;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AdminAccessModel) TableName() string {
	return "adminaccess"
}
