package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"feedlooply-api/internal/config"
	"feedlooply-api/pkg/logging"
)

const razorpayBaseURL = "https://api.razorpay.com"

// RazorpayService creates and verifies Razorpay orders
type RazorpayService struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewRazorpayService creates a new Razorpay service instance
func NewRazorpayService() *RazorpayService {
	return &RazorpayService{
		keyID:     config.AppConfig.RazorpayKeyID,
		keySecret: config.AppConfig.RazorpayKeySecret,
		baseURL:   razorpayBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Configured reports whether API credentials are present
func (s *RazorpayService) Configured() bool {
	return s.keyID != "" && s.keySecret != ""
}

// KeyID returns the public key id handed to the checkout widget
func (s *RazorpayService) KeyID() string {
	return s.keyID
}

// OrderResult is the outcome of a successful order creation. DisplayCurrency
// may differ from the order's charge currency when the USD attempt fell back
// to INR.
type OrderResult struct {
	Order           map[string]interface{}
	KeyID           string
	DisplayCurrency string
}

// ProviderError carries the provider's HTTP status and error description
type ProviderError struct {
	Status  int
	Message string
	Data    map[string]interface{}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("razorpay: %s (status %d)", e.Message, e.Status)
}

type orderPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderAttempt struct {
	ok     bool
	status int
	data   map[string]interface{}
}

// createOrder performs one authenticated POST to the orders endpoint
func (s *RazorpayService) createOrder(ctx context.Context, p orderPayload) (*orderAttempt, error) {
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(s.keyID + ":" + s.keySecret))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call razorpay: %w", err)
	}
	defer resp.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		data = map[string]interface{}{}
	}

	return &orderAttempt{
		ok:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		status: resp.StatusCode,
		data:   data,
	}, nil
}

// CreateOrderWithFallback creates an order in the requested currency. A
// rejected USD attempt (account not enabled, or any non-2xx) is retried once
// in INR at the table price; the result then keeps USD as the display
// currency while the order itself is charged in INR.
func (s *RazorpayService) CreateOrderWithFallback(ctx context.Context, amount int64, currency, receipt string) (*OrderResult, *ProviderError) {
	attempt, err := s.createOrder(ctx, orderPayload{Amount: amount, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, &ProviderError{Status: http.StatusInternalServerError, Message: err.Error()}
	}

	if !attempt.ok && currency == "USD" {
		logging.Warnf("USD order rejected (status %d), falling back to INR", attempt.status)
		fallback, err := s.createOrder(ctx, orderPayload{Amount: PriceINRPaise, Currency: "INR", Receipt: receipt})
		if err == nil && fallback.ok {
			return &OrderResult{
				Order:           fallback.data,
				KeyID:           s.keyID,
				DisplayCurrency: "USD", // show USD while charging INR
			}, nil
		}
		return nil, providerError(attempt)
	}

	if !attempt.ok {
		return nil, providerError(attempt)
	}

	return &OrderResult{
		Order:           attempt.data,
		KeyID:           s.keyID,
		DisplayCurrency: currency,
	}, nil
}

// providerError extracts the provider's error description from a failed
// attempt, keeping its HTTP status.
func providerError(attempt *orderAttempt) *ProviderError {
	message := "Razorpay error"
	if errObj, ok := attempt.data["error"].(map[string]interface{}); ok {
		if desc, ok := errObj["description"].(string); ok && desc != "" {
			message = desc
		}
	}
	status := attempt.status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &ProviderError{Status: status, Message: message, Data: attempt.data}
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256(orderId + "|" + paymentId, keySecret) in hex.
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := mac.Sum(nil)

	sigBytes, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, sigBytes)
}
