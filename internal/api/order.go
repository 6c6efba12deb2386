package api

import (
	"fmt"
	"net/http"
	"time"

	"feedlooply-api/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderRequest represents an order-creation request from the checkout page
type OrderRequest struct {
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	Receipt  string `json:"receipt"`
}

// countryHeaders are checked in order when the body carries no country.
var countryHeaders = []string{"X-Vercel-IP-Country", "X-Country-Code", "CF-IPCountry"}

// CreateOrder handles POST /api/razorpay/order
func (a *API) CreateOrder(c *gin.Context) {
	if !a.Razorpay.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Missing Razorpay credentials. Add RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET in Project Settings.",
		})
		return
	}

	var req OrderRequest
	_ = c.ShouldBindJSON(&req) // an empty or malformed body means defaults

	country := req.Country
	for _, h := range countryHeaders {
		if country != "" {
			break
		}
		country = c.GetHeader(h)
	}

	currency := services.ResolveOrderCurrency(req.Currency, country)
	amount := services.ResolveOrderAmount(currency, req.Amount)

	receipt := req.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	}

	result, perr := a.Razorpay.CreateOrderWithFallback(c.Request.Context(), amount, currency, receipt)
	if perr != nil {
		c.JSON(perr.Status, gin.H{"ok": false, "error": perr.Message, "data": perr.Data})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"order":           result.Order,
		"keyId":           result.KeyID,
		"displayCurrency": result.DisplayCurrency,
	})
}
