package api

import (
	"fmt"
	"net/http"
	"time"

	"feedlooply-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DebugSheets handles GET /api/debug/sheets. It writes one synthetic row to
// each sheet so a deploy can be checked end to end. Diagnostic only.
func (a *API) DebugSheets(c *gin.Context) {
	ts := time.Now().UTC().Format(time.RFC3339)

	err := a.Sheets.AppendSubscriber(c.Request.Context(), models.SubscriberRow{
		Email:  fmt.Sprintf("debug+%s@example.com", uuid.NewString()[:8]),
		Name:   "Debug Subscriber",
		Source: "debug-route",
	})
	if err == nil {
		err = a.Sheets.AppendPayment(c.Request.Context(), models.PaymentRow{
			Email:     "debug+pay@example.com",
			Name:      "Debug Payer",
			Amount:    1,
			Currency:  "USD",
			Plan:      "debug",
			Status:    "paid",
			OrderID:   "ord_" + ts,
			PaymentID: "pay_" + ts,
		})
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Wrote test rows (check your sheets). See server logs for details.",
	})
}
