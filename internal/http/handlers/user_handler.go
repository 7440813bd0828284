package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"access_gate/internal/auth"
	"access_gate/internal/authz"
	"access_gate/internal/models"
)

const elementUsers = "users"

type userResp struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Patronymic string `json:"patronymic"`
}

func toUserResp(u models.User) userResp {
	return userResp{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Patronymic: u.Patronymic,
	}
}

// MeHandler returns the caller's own profile. No authorization check:
// the gate already resolved an active identity.
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		var user models.User
		if err := db.Where("id = ? AND is_active = ?", ident.ID, true).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": toUserResp(user), "role": ident.Role})
	}
}

// ListUsers returns active users visible to the caller: everyone with
// read_all, otherwise just the caller's own record.
func ListUsers(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, scope, ok := listScope(c, engine, elementUsers)
		if !ok {
			return
		}

		q := db.Where("is_active = ?", true)
		if scope == authz.ScopeOwn {
			q = q.Where("id = ?", ident.ID)
		}

		var users []models.User
		if err := q.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]userResp, 0, len(users))
		for _, u := range users {
			out = append(out, toUserResp(u))
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}

// GetUser returns a single active user, subject to the own/all read check.
func GetUser(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findActiveUser(c, db)
		if !ok {
			return
		}

		if _, ok := checkOwned(c, engine, elementUsers, user.ID); !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": toUserResp(*user)})
	}
}

// UpdateUser patches profile fields. Email, password and role do not move
// through this endpoint.
func UpdateUser(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findActiveUser(c, db)
		if !ok {
			return
		}
		if _, ok := checkOwned(c, engine, elementUsers, user.ID); !ok {
			return
		}

		var input struct {
			FirstName  *string `json:"first_name"`
			LastName   *string `json:"last_name"`
			Patronymic *string `json:"patronymic"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Patronymic != nil {
			user.Patronymic = *input.Patronymic
		}

		if err := db.Save(user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": toUserResp(*user)})
	}
}

// DeleteUser soft-deletes: flips is_active, never removes the row. The
// user's existing tokens die at the gate on their next request.
func DeleteUser(db *gorm.DB, engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findActiveUser(c, db)
		if !ok {
			return
		}
		if _, ok := checkOwned(c, engine, elementUsers, user.ID); !ok {
			return
		}

		if err := db.Model(user).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func findActiveUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return nil, false
	}

	var user models.User
	err = db.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return &user, true
}
