package model

// RatingModel mirrors the append-only 'ratings' table. Rows are never
// updated or deleted; aggregation happens at read time.
type RatingModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	ItemID   int    `gorm:"column:item_id;not null;index:idx_ratings_item"`
	ItemType string `gorm:"column:item_type;type:varchar(16);not null;index:idx_ratings_item"`
	Rating   int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
