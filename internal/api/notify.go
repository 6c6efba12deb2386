package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"feedlooply-api/internal/services"

	"github.com/gin-gonic/gin"
)

// NotifyRequest represents a subscribe/paid notification event
type NotifyRequest struct {
	Type         string                 `json:"type"`
	Email        string                 `json:"email"`
	Name         string                 `json:"name"`
	Amount       interface{}            `json:"amount"` // number or numeric string
	Currency     string                 `json:"currency"`
	Plan         string                 `json:"plan"`
	Country      string                 `json:"country"`
	TxID         string                 `json:"txId"`
	AccountEmail string                 `json:"accountEmail"`
	TempPassword string                 `json:"tempPassword"`
	Meta         map[string]interface{} `json:"meta"`
	Geo          struct {
		Country string `json:"country"`
	} `json:"geo"`
}

// NotifyHandler handles POST /api/notify
func (a *API) NotifyHandler(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Type == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing type or email"})
		return
	}

	txID := req.TxID
	if txID == "" {
		txID = metaString(req.Meta, "txId")
	}
	country := req.Country
	if country == "" {
		country = metaString(req.Meta, "country")
	}
	if country == "" {
		country = req.Geo.Country
	}

	var wroteToSheets bool
	switch req.Type {
	case "subscribe":
		wroteToSheets = a.Notify.DispatchSubscribe(c.Request.Context(), services.SubscribeEvent{
			Email:   req.Email,
			Name:    req.Name,
			Country: country,
			Source:  metaString(req.Meta, "source"),
			Meta:    req.Meta,
		})
	case "paid":
		orderID := metaString(req.Meta, "order_id")
		if orderID == "" {
			orderID = metaString(req.Meta, "orderId")
		}
		if orderID == "" {
			orderID = metaString(req.Meta, "order")
		}
		paymentID := txID
		if paymentID == "" {
			paymentID = metaString(req.Meta, "payment_id")
		}
		if paymentID == "" {
			paymentID = metaString(req.Meta, "paymentId")
		}

		wroteToSheets = a.Notify.DispatchPaid(c.Request.Context(), services.PaidEvent{
			Email:        req.Email,
			Name:         req.Name,
			Amount:       coerceAmount(req.Amount),
			Currency:     req.Currency,
			Plan:         req.Plan,
			Country:      country,
			Status:       metaString(req.Meta, "status"),
			TxID:         paymentID,
			OrderID:      orderID,
			AccountEmail: req.AccountEmail,
			TempPassword: req.TempPassword,
			Meta:         req.Meta,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "wroteToSheets": wroteToSheets})
}

func metaString(meta map[string]interface{}, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

// coerceAmount accepts the amount as a JSON number or a numeric string
func coerceAmount(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i
	}
	return 0
}
