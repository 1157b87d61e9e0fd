package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

const (
	DefaultMaxAttempts = 3
	TimestampLayout    = "2006-01-02 15:04:05"
)

type Order struct {
	ID          uuid.UUID
	Bun         string
	Meat        string
	Sauce       string
	Cheese      string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
}

func (o *Order) Timestamp() string {
	return o.CreatedAt.Format(TimestampLayout)
}

type OrderRepository interface {
	NextID() (uuid.UUID, error)
	// LoadCount returns the number of completed orders, or 0 when no valid count is stored.
	LoadCount() int
	// Save overwrites the stored order record and count.
	Save(order *Order, count int) error
	Location() string
}
