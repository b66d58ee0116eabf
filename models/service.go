package models

// Service represents a bookable service offered by a business.
type Service struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description" json:"description"`
	TimeInMinutes int     `bson:"time_in_minutes" json:"time_in_minutes"` // Meeting duration; must be > 0
	Price         float64 `bson:"price" json:"price"`
	BusinessID    string  `bson:"business_id" json:"business_id"`
}
