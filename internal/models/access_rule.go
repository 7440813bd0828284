package models

import "time"

// AccessRule holds the seven permission flags for one (role, element) pair.
// At most one rule governs a pair; absence of a rule means all flags false.
type AccessRule struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	RoleID    int64 `gorm:"index;not null;uniqueIndex:idx_role_element" json:"role_id"`
	ElementID int64 `gorm:"index;not null;uniqueIndex:idx_role_element" json:"element_id"`

	Read      bool `gorm:"column:read_permission;default:false" json:"read"`
	ReadAll   bool `gorm:"column:read_all_permission;default:false" json:"read_all"`
	Create    bool `gorm:"column:create_permission;default:false" json:"create"`
	Update    bool `gorm:"column:update_permission;default:false" json:"update"`
	UpdateAll bool `gorm:"column:update_all_permission;default:false" json:"update_all"`
	Delete    bool `gorm:"column:delete_permission;default:false" json:"delete"`
	DeleteAll bool `gorm:"column:delete_all_permission;default:false" json:"delete_all"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Role    *Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Element *BusinessElement `gorm:"foreignKey:ElementID" json:"element,omitempty"`
}
