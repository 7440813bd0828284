package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"access_gate/internal/models"
	"access_gate/internal/password"
	"access_gate/internal/token"
)

// RegisterHandler creates a user and returns a fresh token
func RegisterHandler(db *gorm.DB, codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email           string `json:"email" binding:"required,email"`
			FirstName       string `json:"first_name" binding:"required"`
			LastName        string `json:"last_name" binding:"required"`
			Patronymic      string `json:"patronymic"`
			Password        string `json:"password" binding:"required,min=8"`
			PasswordConfirm string `json:"password_confirm" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Password != input.PasswordConfirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
			return
		}

		input.Email = strings.TrimSpace(strings.ToLower(input.Email))

		var existing int64
		if err := db.Model(&models.User{}).
			Where("email = ?", input.Email).
			Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}

		hash, err := password.Hash(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		user := models.User{
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Patronymic:   input.Patronymic,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		tokenString, err := codec.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": tokenString})
	}
}

// LoginHandler authenticates the user and returns JWT
func LoginHandler(db *gorm.DB, codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !user.IsActive || !password.Verify(input.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		tokenString, err := codec.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": tokenString})
	}
}

// LogoutHandler is intentionally a no-op beyond the success message:
// tokens are not revocable before expiry, logout is client-side discard.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
	}
}
