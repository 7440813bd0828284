package models

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FirstName    string `gorm:"size:30" json:"first_name"`
	LastName     string `gorm:"size:30" json:"last_name"`
	Patronymic   string `gorm:"size:30" json:"patronymic"`
	PasswordHash string `gorm:"size:255" json:"-"`
	// Soft delete: deactivated users keep their row but fail every
	// identity lookup.
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	RoleID    *int64    `gorm:"index" json:"role_id"`
	Role      *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
