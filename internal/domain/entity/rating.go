package entity

// ItemType distinguishes which catalog a rated item belongs to.
type ItemType string

const (
	ItemTypeTShirt ItemType = "tshirt"
	ItemTypeMug    ItemType = "mug"
)

// Valid reports whether the item type is one of the closed enum values.
func (t ItemType) Valid() bool {
	return t == ItemTypeTShirt || t == ItemTypeMug
}

// Rating bounds. Values outside [MinRatingValue, MaxRatingValue] are rejected
// before touching storage.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is a single append-only rating row. There is no rater identity and
// no uniqueness constraint: an item may accumulate unlimited ratings.
type Rating struct {
	ID       int      `json:"id"`
	ItemID   int      `json:"item_id"`
	ItemType ItemType `json:"item_type"`
	Value    int      `json:"rating"`
}

// RatingStats is the aggregate over all ratings of one (item, type) pair.
// TotalRating is 0 when no ratings exist.
type RatingStats struct {
	TotalRating int `json:"total_rating"`
	RatingCount int `json:"rating_count"`
}
