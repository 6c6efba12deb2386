package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"feedlooply-api/internal/config"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		SiteURL:    "https://feedlooply.com",
		AdminEmail: "admin@feedlooply.com",
	}
	os.Exit(m.Run())
}

// mockSheets builds a SheetsService wired to in-test token and append
// servers, recording appended rows.
func mockSheets(t *testing.T, rows *[][][]interface{}) (*SheetsService, func()) {
	t.Helper()
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok", "expires_in": 3600})
	}))
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Values [][]interface{} `json:"values"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		*rows = append(*rows, body.Values)
		w.Write([]byte("{}"))
	}))
	s := newTestSheets(testPrivateKeyPEM(t), tokenSrv.URL, apiSrv.URL, time.Now())
	return s, func() { tokenSrv.Close(); apiSrv.Close() }
}

func TestDispatchSubscribe(t *testing.T) {
	var rows [][][]interface{}
	sheets, done := mockSheets(t, &rows)
	defer done()

	n := &NotifyService{mail: &MailService{}, sheets: sheets, adminEmail: "admin@feedlooply.com"}
	wrote := n.DispatchSubscribe(context.Background(), SubscribeEvent{
		Email:   "jane@example.com",
		Name:    "Jane",
		Country: "IN",
	})
	if !wrote {
		t.Fatal("expected wroteToSheets=true")
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 append, got %d", len(rows))
	}
	row := rows[0][0]
	if row[1] != "jane@example.com" || row[4] != "notify" {
		t.Errorf("subscriber row = %v", row)
	}
}

func TestDispatchSubscribeSheetsDown(t *testing.T) {
	// unconfigured spreadsheet: the event still succeeds, wroteToSheets is false
	sheets := newTestSheets(testPrivateKeyPEM(t), "", "", time.Now())
	sheets.subscribersSpreadsheetID = ""

	n := &NotifyService{mail: &MailService{}, sheets: sheets, adminEmail: "admin@feedlooply.com"}
	if wrote := n.DispatchSubscribe(context.Background(), SubscribeEvent{Email: "jane@example.com"}); wrote {
		t.Fatal("expected wroteToSheets=false")
	}
}

func TestDispatchPaidDefaults(t *testing.T) {
	var rows [][][]interface{}
	sheets, done := mockSheets(t, &rows)
	defer done()

	n := &NotifyService{mail: &MailService{}, sheets: sheets, adminEmail: "admin@feedlooply.com"}
	wrote := n.DispatchPaid(context.Background(), PaidEvent{
		Email:  "jane@example.com",
		Name:   "Jane",
		Amount: 399900,
		TxID:   "pay_xyz",
	})
	if !wrote {
		t.Fatal("expected wroteToSheets=true")
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 append, got %d", len(rows))
	}
	row := rows[0][0]
	if row[4] != "INR" {
		t.Errorf("currency default = %v, want INR", row[4])
	}
	if row[6] != "Lifetime" {
		t.Errorf("plan default = %v, want Lifetime", row[6])
	}
	if row[7] != "success" {
		t.Errorf("status default = %v, want success", row[7])
	}
	if row[9] != "pay_xyz" {
		t.Errorf("paymentId = %v", row[9])
	}
}
