package api

import (
	"net/http"

	"feedlooply-api/internal/config"
	"feedlooply-api/internal/database"
	"feedlooply-api/internal/models"
	"feedlooply-api/internal/services"
	"feedlooply-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// WebinarRequest represents a webinar registration
type WebinarRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Goals      string `json:"goals"`
	Challenges string `json:"challenges"`
}

// RegisterWebinar handles POST /api/webinar
func (a *API) RegisterWebinar(c *gin.Context) {
	var req WebinarRequest
	_ = c.ShouldBindJSON(&req)

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name is required"})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email"})
		return
	}
	if req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Phone is required"})
		return
	}

	if !a.Limiter.Allow(c.Request.Context(), "webinar", req.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Please wait before registering again"})
		return
	}

	reg := models.WebinarRegistration{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Role:       req.Role,
		Experience: req.Experience,
		Goals:      req.Goals,
		Challenges: req.Challenges,
	}
	database.SaveWebinarRegistration(&reg)

	// Emails are best-effort; a mail outage never fails the registration.
	if err := a.Mail.Send(req.Email, "Webinar Registration Confirmed - September 8, 2025", services.WebinarConfirmationEmail(req.Name)); err != nil {
		logging.Errorf("webinar confirmation email failed for %s: %v", req.Email, err)
	}
	if err := a.Mail.Send(config.AppConfig.AdminEmail, "New Webinar Registration", services.WebinarAdminEmail(reg)); err != nil {
		logging.Errorf("webinar admin email failed: %v", err)
	}

	logging.Infof("new webinar registration: %s <%s>", req.Name, req.Email)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
