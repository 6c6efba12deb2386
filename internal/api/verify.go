package api

import (
	"net/http"

	"feedlooply-api/internal/models"
	"feedlooply-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// VerifyPaymentRequest represents the checkout callback sent after payment
type VerifyPaymentRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`

	// optional metadata recorded alongside the payment
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Amount   interface{} `json:"amount"`
	Currency string      `json:"currency"`
	Country  string      `json:"country"`
	Plan     string      `json:"plan"`
}

// VerifyPayment handles POST /api/verify-payment
func (a *API) VerifyPayment(c *gin.Context) {
	if !a.Razorpay.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Missing Razorpay credentials. Add RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET.",
		})
		return
	}

	var req VerifyPaymentRequest
	_ = c.ShouldBindJSON(&req)

	if req.PaymentID == "" || req.OrderID == "" || req.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing payment verification fields."})
		return
	}

	if !a.Razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid signature. Verification failed."})
		return
	}

	// Record the payment when the caller supplied enough metadata. The
	// append is best-effort: a spreadsheet outage never fails verification.
	wroteToSheets := false
	amount := coerceAmount(req.Amount)
	if req.Email != "" && amount > 0 && req.Currency != "" {
		err := a.Sheets.AppendPayment(c.Request.Context(), models.PaymentRow{
			Email:     req.Email,
			Name:      req.Name,
			Amount:    amount,
			Currency:  req.Currency,
			Country:   req.Country,
			Plan:      req.Plan,
			Status:    "success",
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
		})
		if err != nil {
			logging.Errorf("sheets payment append error: %v", err)
		} else {
			wroteToSheets = true
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "txId": req.PaymentID, "wroteToSheets": wroteToSheets})
}
