package location

import "time"

// Location is one restaurant branch.
type Location struct {
	ID        string
	Name      string
	Address   *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
