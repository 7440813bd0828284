package seed

import (
	"log"

	"gorm.io/gorm"

	"access_gate/internal/models"
	"access_gate/internal/password"
)

// FirstSetup seeds the roles, business elements, access rules and the
// bootstrap admin account. Idempotent: every record goes through
// FirstOrCreate, so re-running against a populated database is a no-op.
func FirstSetup(db *gorm.DB, adminPassword string) error {
	// -------------------------
	// 1) Ensure roles
	// -------------------------
	adminRole := models.Role{Name: "admin", Description: "Full access to every element"}
	userRole := models.Role{Name: "user", Description: "Own-scope access"}

	if err := db.Where("name = ?", adminRole.Name).FirstOrCreate(&adminRole).Error; err != nil {
		return err
	}
	if err := db.Where("name = ?", userRole.Name).FirstOrCreate(&userRole).Error; err != nil {
		return err
	}

	// -------------------------
	// 2) Ensure business elements
	// -------------------------
	elements := []models.BusinessElement{
		{Name: "users", Description: "User profiles"},
		{Name: "mock_data", Description: "Demo protected objects"},
		{Name: "access_rules", Description: "Roles and the permission matrix"},
	}

	elementIDs := map[string]int64{}
	for _, e := range elements {
		tmp := e
		if err := db.Where("name = ?", tmp.Name).FirstOrCreate(&tmp).Error; err != nil {
			return err
		}
		elementIDs[tmp.Name] = tmp.ID
	}

	// -------------------------
	// 3) Ensure access rules
	// -------------------------
	ensureRule := func(rule models.AccessRule) error {
		return db.Where("role_id = ? AND element_id = ?", rule.RoleID, rule.ElementID).
			FirstOrCreate(&rule).Error
	}

	// Admin: all seven flags on every element.
	for _, id := range elementIDs {
		rule := models.AccessRule{
			RoleID: adminRole.ID, ElementID: id,
			Read: true, ReadAll: true, Create: true,
			Update: true, UpdateAll: true, Delete: true, DeleteAll: true,
		}
		if err := ensureRule(rule); err != nil {
			return err
		}
	}

	// User: own profile only, own mock data read only, no admin surface.
	if err := ensureRule(models.AccessRule{
		RoleID: userRole.ID, ElementID: elementIDs["users"],
		Read: true, Update: true, Delete: true,
	}); err != nil {
		return err
	}
	if err := ensureRule(models.AccessRule{
		RoleID: userRole.ID, ElementID: elementIDs["mock_data"],
		Read: true,
	}); err != nil {
		return err
	}

	// -------------------------
	// 4) Ensure admin user
	// -------------------------
	const adminEmail = "admin@example.com"

	passHash, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	adminUser := models.User{
		Email:        adminEmail,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: passHash,
		IsActive:     true,
		RoleID:       &adminRole.ID,
	}
	if err := db.Where("email = ?", adminEmail).FirstOrCreate(&adminUser).Error; err != nil {
		return err
	}

	log.Printf("✅ Seed OK | admin=%s | roles=[admin,user] | elements=%d", adminEmail, len(elements))
	return nil
}
