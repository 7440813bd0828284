package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"access_gate/internal/authz"
	"access_gate/internal/models"
)

// The admin surface is itself a business element: who may view or edit
// the permission matrix is decided by the same matrix.
const elementAccessRules = "access_rules"

func ListRoles(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := checkAccess(c, engine, elementAccessRules, false); !ok {
			return
		}

		var roles []models.Role
		if err := db.Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"roles": roles})
	}
}

func CreateRole(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := checkAccess(c, engine, elementAccessRules, false); !ok {
			return
		}

		var input struct {
			Name        string `json:"name" binding:"required"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		role := models.Role{Name: input.Name, Description: input.Description}
		if err := db.Create(&role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"role": role})
	}
}

func ListAccessRules(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := checkAccess(c, engine, elementAccessRules, false); !ok {
			return
		}

		var rules []models.AccessRule
		if err := db.Preload("Role").Preload("Element").Find(&rules).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rules": rules})
	}
}

type accessRuleInput struct {
	RoleID    int64 `json:"role_id" binding:"required"`
	ElementID int64 `json:"element_id" binding:"required"`
	Read      bool  `json:"read"`
	ReadAll   bool  `json:"read_all"`
	Create    bool  `json:"create"`
	Update    bool  `json:"update"`
	UpdateAll bool  `json:"update_all"`
	Delete    bool  `json:"delete"`
	DeleteAll bool  `json:"delete_all"`
}

func CreateAccessRule(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := checkAccess(c, engine, elementAccessRules, false); !ok {
			return
		}

		var input accessRuleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// One rule per (role, element) pair.
		var existing int64
		if err := db.Model(&models.AccessRule{}).
			Where("role_id = ? AND element_id = ?", input.RoleID, input.ElementID).
			Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "rule already exists for this role and element"})
			return
		}

		rule := models.AccessRule{
			RoleID:    input.RoleID,
			ElementID: input.ElementID,
			Read:      input.Read,
			ReadAll:   input.ReadAll,
			Create:    input.Create,
			Update:    input.Update,
			UpdateAll: input.UpdateAll,
			Delete:    input.Delete,
			DeleteAll: input.DeleteAll,
		}
		if err := db.Create(&rule).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"rule": rule})
	}
}

func UpdateAccessRule(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := checkAccess(c, engine, elementAccessRules, false); !ok {
			return
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
			return
		}

		var rule models.AccessRule
		if err := db.First(&rule, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var input accessRuleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rule.RoleID = input.RoleID
		rule.ElementID = input.ElementID
		rule.Read = input.Read
		rule.ReadAll = input.ReadAll
		rule.Create = input.Create
		rule.Update = input.Update
		rule.UpdateAll = input.UpdateAll
		rule.DeleteAll = input.DeleteAll
		rule.Delete = input.Delete

		if err := db.Save(&rule).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rule": rule})
	}
}
