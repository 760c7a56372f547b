package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"event-backend/config"
	"event-backend/models"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Login POST /api/auth/login
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	password := payload.Password
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	var organizer models.Organizer
	if err := config.DB.Where("email = ?", email).First(&organizer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(organizer.Password), []byte(password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := generateTokenHex(32)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"organizer": gin.H{
			"id":        organizer.ID,
			"full_name": organizer.FullName,
			"email":     organizer.Email,
		},
	})
}

// ForgotPassword POST /api/auth/forgot
// Always answers ok so the endpoint cannot be used to probe which emails
// have accounts.
func ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	var organizer models.Organizer
	if err := config.DB.Where("email = ?", email).First(&organizer).Error; err == nil {
		token, tErr := generateTokenHex(32)
		if tErr == nil {
			expires := time.Now().UTC().Add(1 * time.Hour)
			if uErr := config.DB.Model(&organizer).Updates(map[string]interface{}{
				"reset_token":         token,
				"reset_token_expires": expires,
			}).Error; uErr == nil {
				frontendURL := utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000")
				link := strings.TrimRight(frontendURL, "/") + "/reset?token=" + token
				if mErr := utils.SendPasswordResetEmail(organizer.Email, link); mErr != nil {
					log.Printf("reset email failed for %s: %v", utils.MaskEmail(organizer.Email), mErr)
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset email was sent"})
}
