package services

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"feedlooply-api/internal/config"
	"feedlooply-api/internal/database"
	"feedlooply-api/internal/models"
	"feedlooply-api/pkg/logging"

	jwemail "github.com/jordan-wright/email"
)

const brevoSendURL = "https://api.brevo.com/v3/smtp/email"

// MailService sends transactional email. Transport selection: Brevo API when
// an API key is configured, SMTP when the SMTP_* variables are complete,
// otherwise dry-run (log and report success so the UX is never blocked).
type MailService struct {
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
	from     string

	brevoAPIKey string
	brevoURL    string

	httpClient *http.Client
}

// NewMailService creates a new mail service instance
func NewMailService() *MailService {
	return &MailService{
		smtpHost:    config.AppConfig.SMTPHost,
		smtpPort:    config.AppConfig.SMTPPort,
		smtpUser:    config.AppConfig.SMTPUser,
		smtpPass:    config.AppConfig.SMTPPass,
		from:        config.AppConfig.SMTPFrom,
		brevoAPIKey: config.AppConfig.BrevoAPIKey,
		brevoURL:    brevoSendURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Transport reports which transport a send would use
func (s *MailService) Transport() string {
	if s.brevoAPIKey != "" {
		return "brevo"
	}
	if s.smtpConfigured() {
		return "smtp"
	}
	return "dry-run"
}

func (s *MailService) smtpConfigured() bool {
	return s.smtpHost != "" && s.smtpPort != "" && s.smtpUser != "" && s.smtpPass != "" && s.from != ""
}

// Send delivers one HTML email. Dry-run sends succeed without delivering.
func (s *MailService) Send(to, subject, html string) error {
	transport := s.Transport()

	var err error
	switch transport {
	case "brevo":
		err = s.sendBrevo(to, subject, html)
	case "smtp":
		err = s.sendSMTP(to, subject, html)
	default:
		logging.Infof("SMTP env vars not set, dry-run email to %s: %s", to, subject)
	}

	entry := &models.EmailLog{
		Recipient: to,
		Subject:   subject,
		Transport: transport,
		Status:    "sent",
	}
	if err != nil {
		entry.Status = "failed"
		entry.ErrorMsg = err.Error()
	}
	database.SaveEmailLog(entry)

	return err
}

// sendSMTP sends through the configured SMTP relay. Port 465 uses implicit
// TLS; other ports rely on opportunistic STARTTLS.
func (s *MailService) sendSMTP(to, subject, html string) error {
	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	auth := smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)

	e := jwemail.NewEmail()
	e.From = s.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)

	if s.smtpPort == "465" {
		return e.SendWithTLS(addr, auth, &tls.Config{ServerName: s.smtpHost})
	}
	return e.Send(addr, auth)
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// sendBrevo sends through the Brevo transactional email API
func (s *MailService) sendBrevo(to, subject, html string) error {
	jsonData, err := json.Marshal(brevoSendRequest{
		Sender:      brevoParty{Name: "Feedlooply", Email: s.from},
		To:          []brevoParty{{Email: to}},
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.brevoURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.brevoAPIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("brevo API error: status %d", resp.StatusCode)
	}

	return nil
}
