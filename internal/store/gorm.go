package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"access_gate/internal/models"
)

// Gorm backs the store interfaces with the MySQL credential store.
type Gorm struct{ DB *gorm.DB }

func (s Gorm) FindActiveByID(ctx context.Context, id int64) (*Identity, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Preload("Role").
		Where("id = ? AND is_active = ?", id, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ident := &Identity{ID: user.ID, Email: user.Email}
	if user.Role != nil {
		ident.Role = user.Role.Name
	}
	return ident, nil
}

func (s Gorm) FindRule(ctx context.Context, roleName, elementName string) (*models.AccessRule, error) {
	var rule models.AccessRule
	err := s.DB.WithContext(ctx).
		Joins("JOIN roles r ON r.id = access_rules.role_id").
		Joins("JOIN business_elements e ON e.id = access_rules.element_id").
		Where("r.name = ? AND e.name = ?", roleName, elementName).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}
