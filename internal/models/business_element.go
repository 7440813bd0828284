package models

import "time"

// BusinessElement is a named category of protected resource ("users",
// "mock_data", ...) used as the permission lookup key. Endpoints reference
// elements statically; callers never supply them.
type BusinessElement struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
