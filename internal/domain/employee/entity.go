package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	UserID     *string
	LocationID *string
	FirstName  string
	LastName   string
	JobTitle   string
	Phone      *string

	// Pay inputs. All optional in the backing store; the aggregation layer
	// treats nil as zero.
	BaseSalary *decimal.Decimal
	HourlyRate *decimal.Decimal
	Bonus      *decimal.Decimal
	Advance    *decimal.Decimal

	// Discipline counters maintained by managers.
	InfractionCount int
	AbsenceCount    int
	LatenessCount   int

	Status    Status
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Joined fields
	LocationName *string
}

func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
}
