package domain

import "time"

// Event is always owned by exactly one user. Reads, updates and deletes
// are scoped by (id, owner_id); an event owned by someone else behaves
// like a missing one. Deleting an event does not cascade to its roster
// rows, matching the persisted schema.
type Event struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `gorm:"index" json:"date"`
	OwnerID     string    `gorm:"index;not null" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
