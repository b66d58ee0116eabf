package models

// OpeningHours is a single weekday open/close window. Times are 24-hour
// "HH:MM" strings; at most one entry per weekday.
type OpeningHours struct {
	Day   string `bson:"day" json:"day"`
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Business owns its services and the weekly schedule meetings are booked
// against.
type Business struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Description  string         `bson:"description" json:"description"`
	Email        string         `bson:"email" json:"email"`
	Telephone    string         `bson:"telephone,omitempty" json:"telephone,omitempty"`
	Address      string         `bson:"address" json:"address"`
	ManagerID    string         `bson:"manager_id" json:"manager_id"`
	OpeningHours []OpeningHours `bson:"opening_hours" json:"opening_hours"`
}
