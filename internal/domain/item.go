package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a single checklist entry within a category.
type Item struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Title      string    `json:"title"`
	Done       bool      `json:"done"`
	CreatedAt  time.Time `json:"created_at"`
}
