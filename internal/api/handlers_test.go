package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"feedlooply-api/internal/config"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestRouter builds a router over services wired purely from the given
// config. Unconfigured side channels (mail, sheets) degrade to dry-run/skip.
func newTestRouter(cfg *config.Config) *gin.Engine {
	if cfg.SubscribersSheet == "" {
		cfg.SubscribersSheet = "Subscribers"
	}
	if cfg.PaymentsSheet == "" {
		cfg.PaymentsSheet = "Payments"
	}
	config.AppConfig = cfg

	r := gin.New()
	SetupRoutes(r, NewAPI())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestSubscribeValidation(t *testing.T) {
	r := newTestRouter(&config.Config{})

	cases := []struct {
		email  string
		status int
	}{
		{"", http.StatusBadRequest},
		{"not-an-email", http.StatusBadRequest},
		{"missing@tld", http.StatusBadRequest},
		{"a@b.co", http.StatusOK},
		{"jane.doe+tag@example.com", http.StatusOK},
	}
	for _, tc := range cases {
		w, _ := doJSON(t, r, http.MethodPost, "/api/subscribe", map[string]string{"email": tc.email})
		if w.Code != tc.status {
			t.Errorf("subscribe %q: status = %d, want %d", tc.email, w.Code, tc.status)
		}
	}
}

func TestSubscribeOK(t *testing.T) {
	r := newTestRouter(&config.Config{})
	w, resp := doJSON(t, r, http.MethodPost, "/api/subscribe", map[string]string{"email": "a@b.co", "name": "A"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["ok"] != true {
		t.Errorf("response = %v", resp)
	}
}

func TestNotifyValidation(t *testing.T) {
	r := newTestRouter(&config.Config{AdminEmail: "admin@feedlooply.com", SiteURL: "https://feedlooply.com"})

	w, resp := doJSON(t, r, http.MethodPost, "/api/notify", map[string]string{"email": "a@b.co"})
	if w.Code != http.StatusBadRequest || resp["error"] != "Missing type or email" {
		t.Errorf("missing type: %d %v", w.Code, resp)
	}

	w, resp = doJSON(t, r, http.MethodPost, "/api/notify", map[string]string{"type": "subscribe"})
	if w.Code != http.StatusBadRequest || resp["error"] != "Missing type or email" {
		t.Errorf("missing email: %d %v", w.Code, resp)
	}

	w, resp = doJSON(t, r, http.MethodPost, "/api/notify", map[string]string{"type": "refund", "email": "a@b.co"})
	if w.Code != http.StatusBadRequest || resp["error"] != "Unknown type" {
		t.Errorf("unknown type: %d %v", w.Code, resp)
	}
}

func TestNotifySubscribeBestEffort(t *testing.T) {
	// mail dry-run, sheets unconfigured: the request still succeeds
	r := newTestRouter(&config.Config{AdminEmail: "admin@feedlooply.com", SiteURL: "https://feedlooply.com"})

	w, resp := doJSON(t, r, http.MethodPost, "/api/notify", map[string]interface{}{
		"type": "subscribe", "email": "a@b.co", "name": "A",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["ok"] != true {
		t.Errorf("ok = %v", resp["ok"])
	}
	if resp["wroteToSheets"] != false {
		t.Errorf("wroteToSheets = %v, want false", resp["wroteToSheets"])
	}
}

func TestCreateOrderWithoutCredentials(t *testing.T) {
	r := newTestRouter(&config.Config{})

	w, resp := doJSON(t, r, http.MethodPost, "/api/razorpay/order", map[string]interface{}{})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	errMsg, _ := resp["error"].(string)
	if !strings.Contains(errMsg, "RAZORPAY_KEY_ID") {
		t.Errorf("error = %q, want credential guidance", errMsg)
	}
}

func razorpaySignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPayment(t *testing.T) {
	cfg := &config.Config{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "rzp_test_secret"}
	r := newTestRouter(cfg)

	// missing fields
	w, resp := doJSON(t, r, http.MethodPost, "/api/verify-payment", map[string]string{
		"razorpay_payment_id": "pay_1",
	})
	if w.Code != http.StatusBadRequest || resp["error"] != "Missing payment verification fields." {
		t.Errorf("missing fields: %d %v", w.Code, resp)
	}

	// invalid signature
	w, resp = doJSON(t, r, http.MethodPost, "/api/verify-payment", map[string]string{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  "deadbeef",
	})
	if w.Code != http.StatusBadRequest || resp["error"] != "Invalid signature. Verification failed." {
		t.Errorf("invalid signature: %d %v", w.Code, resp)
	}

	// valid signature, no metadata: accepted, nothing appended
	w, resp = doJSON(t, r, http.MethodPost, "/api/verify-payment", map[string]string{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  razorpaySignature("rzp_test_secret", "order_1", "pay_1"),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("valid signature: status = %d, body %v", w.Code, resp)
	}
	if resp["ok"] != true || resp["txId"] != "pay_1" {
		t.Errorf("response = %v", resp)
	}
	if resp["wroteToSheets"] != false {
		t.Errorf("wroteToSheets = %v, want false without metadata", resp["wroteToSheets"])
	}
}

func TestVerifyPaymentWithoutCredentials(t *testing.T) {
	r := newTestRouter(&config.Config{})
	w, _ := doJSON(t, r, http.MethodPost, "/api/verify-payment", map[string]string{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  "sig",
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRegisterWebinarValidation(t *testing.T) {
	r := newTestRouter(&config.Config{AdminEmail: "admin@feedlooply.com"})

	cases := []struct {
		body   map[string]string
		status int
	}{
		{map[string]string{"email": "a@b.co", "phone": "123"}, http.StatusBadRequest},              // no name
		{map[string]string{"name": "A", "phone": "123"}, http.StatusBadRequest},                    // no email
		{map[string]string{"name": "A", "email": "bad", "phone": "123"}, http.StatusBadRequest},    // bad email
		{map[string]string{"name": "A", "email": "a@b.co"}, http.StatusBadRequest},                 // no phone
		{map[string]string{"name": "A", "email": "a@b.co", "phone": "+91 98765"}, http.StatusOK},   // ok
	}
	for i, tc := range cases {
		w, _ := doJSON(t, r, http.MethodPost, "/api/webinar", tc.body)
		if w.Code != tc.status {
			t.Errorf("case %d: status = %d, want %d", i, w.Code, tc.status)
		}
	}
}

func TestRegisterWebinarOK(t *testing.T) {
	r := newTestRouter(&config.Config{AdminEmail: "admin@feedlooply.com"})
	w, resp := doJSON(t, r, http.MethodPost, "/api/webinar", map[string]string{
		"name": "Jane", "email": "jane@example.com", "phone": "+91 9876543210", "company": "Acme",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["success"] != true {
		t.Errorf("response = %v", resp)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&config.Config{})
	w, resp := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || resp["status"] != "ok" {
		t.Errorf("health: %d %v", w.Code, resp)
	}
}
