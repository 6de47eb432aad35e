package domain

import "time"

// Category is a display grouping for tasks. Tasks reference categories by a
// free-standing tag string, not by id, so rows here exist purely for the UI.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
