package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"feedlooply-api/internal/config"
	"feedlooply-api/pkg/logging"
)

// WebhookNotifier forwards new subscribers to an external automation hook
// (Zapier, Make, ConvertKit and the like) when SUBSCRIBE_WEBHOOK_URL is set.
type WebhookNotifier struct {
	url        string
	secret     string
	httpClient *http.Client
}

// NewWebhookNotifier creates a new webhook notifier
func NewWebhookNotifier() *WebhookNotifier {
	return &WebhookNotifier{
		url:    config.AppConfig.SubscribeWebhookURL,
		secret: config.AppConfig.SubscribeWebhookSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether a webhook target is set
func (wn *WebhookNotifier) Configured() bool {
	return wn.url != ""
}

// subscriberPayload is the body posted to the webhook target
type subscriberPayload struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// NotifySubscriber forwards one subscriber, best-effort
func (wn *WebhookNotifier) NotifySubscriber(email string) {
	if !wn.Configured() {
		return
	}

	jsonData, err := json.Marshal(subscriberPayload{Email: email, Source: "feedlooply-landing"})
	if err != nil {
		logging.Errorf("failed to marshal webhook payload: %v", err)
		return
	}

	if err := wn.send(jsonData); err != nil {
		logging.Errorf("subscribe webhook failed: %v", err)
		return
	}
	logging.Infof("subscribe webhook delivered for %s", email)
}

func (wn *WebhookNotifier) send(jsonData []byte) error {
	req, err := http.NewRequest(http.MethodPost, wn.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Feedlooply-Webhook/1.0")
	if wn.secret != "" {
		req.Header.Set("X-Feedlooply-Signature", wn.signature(jsonData))
	}

	resp, err := wn.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// signature generates an HMAC-SHA256 signature over the payload
func (wn *WebhookNotifier) signature(payload []byte) string {
	h := hmac.New(sha256.New, []byte(wn.secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
