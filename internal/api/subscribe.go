package api

import (
	"context"
	"net/http"
	"regexp"

	"feedlooply-api/internal/models"
	"feedlooply-api/internal/response"
	"feedlooply-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// emailPattern accepts anything shaped like user@host.tld.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// SubscribeRequest represents a newsletter signup
type SubscribeRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Subscribe handles POST /api/subscribe
func (a *API) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	_ = c.ShouldBindJSON(&req) // a malformed body is treated as empty

	if !emailPattern.MatchString(req.Email) {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid email")
		return
	}

	if !a.Limiter.Allow(c.Request.Context(), "subscribe", req.Email) {
		response.ErrorJSON(c, http.StatusTooManyRequests, "Please wait before subscribing again")
		return
	}

	if a.Webhook.Configured() {
		a.Webhook.NotifySubscriber(req.Email)
	} else {
		logging.Infof("new subscriber: %s", req.Email)
	}

	// Fire-and-forget: the response does not wait for the sheet write, and
	// a failed write is only logged. At-most-once, no retry.
	row := models.SubscriberRow{
		Email:   req.Email,
		Name:    req.Name,
		Country: req.Country,
		Source:  "feedlooply-landing",
	}
	go func() {
		if err := a.Sheets.AppendSubscriber(context.Background(), row); err != nil {
			logging.Errorf("sheets subscriber append error: %v", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
