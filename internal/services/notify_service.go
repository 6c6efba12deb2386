package services

import (
	"context"
	"strconv"

	"feedlooply-api/internal/config"
	"feedlooply-api/internal/models"
	"feedlooply-api/pkg/logging"
)

// NotifyService fans out subscribe/paid events to transactional email and
// the spreadsheet log. Every side effect is best-effort: failures are logged
// and never surfaced to the caller beyond the wroteToSheets flag.
type NotifyService struct {
	mail       *MailService
	sheets     *SheetsService
	adminEmail string
}

// NewNotifyService creates a new notify service instance
func NewNotifyService(mail *MailService, sheets *SheetsService) *NotifyService {
	return &NotifyService{
		mail:       mail,
		sheets:     sheets,
		adminEmail: config.AppConfig.AdminEmail,
	}
}

// SubscribeEvent describes a new newsletter subscriber
type SubscribeEvent struct {
	Email   string
	Name    string
	Country string
	Source  string
	Meta    map[string]interface{}
}

// DispatchSubscribe sends the confirmation and admin emails and appends the
// subscriber row. Returns whether the sheet write succeeded.
func (s *NotifyService) DispatchSubscribe(ctx context.Context, ev SubscribeEvent) bool {
	if err := s.mail.Send(ev.Email, "Feedlooply — Thanks for subscribing", SubscribeConfirmationEmail(ev.Name)); err != nil {
		logging.Errorf("subscribe confirmation email failed for %s: %v", ev.Email, err)
	}
	if err := s.mail.Send(s.adminEmail, "Feedlooply — New Subscriber", AdminNotifyEmail("subscribe", ev.Email, ev.Name, ev.Meta)); err != nil {
		logging.Errorf("subscribe admin email failed: %v", err)
	}

	source := ev.Source
	if source == "" {
		source = "notify"
	}
	if err := s.sheets.AppendSubscriber(ctx, models.SubscriberRow{
		Email:   ev.Email,
		Name:    ev.Name,
		Country: ev.Country,
		Source:  source,
	}); err != nil {
		logging.Errorf("sheets subscribe append error: %v", err)
		return false
	}
	return true
}

// PaidEvent describes a completed payment
type PaidEvent struct {
	Email        string
	Name         string
	Amount       int64
	Currency     string
	Plan         string
	Country      string
	Status       string
	TxID         string
	OrderID      string
	AccountEmail string
	TempPassword string
	Meta         map[string]interface{}
}

// DispatchPaid sends the receipt and admin emails and appends the payment
// row. Returns whether the sheet write succeeded.
func (s *NotifyService) DispatchPaid(ctx context.Context, ev PaidEvent) bool {
	currency := ev.Currency
	if currency == "" {
		currency = "INR"
	}
	plan := ev.Plan
	if plan == "" {
		plan = "Lifetime"
	}
	accountEmail := ev.AccountEmail
	if accountEmail == "" {
		accountEmail = ev.Email
	}

	receipt := PaymentSuccessEmail(PaymentSuccessParams{
		Name:          ev.Name,
		Amount:        minorUnitsString(ev.Amount),
		Currency:      currency,
		Plan:          ev.Plan,
		TransactionID: ev.TxID,
		AccountEmail:  accountEmail,
		TempPassword:  ev.TempPassword,
	})
	if err := s.mail.Send(ev.Email, "Feedlooply — Payment successful (Lifetime Deal)", receipt); err != nil {
		logging.Errorf("payment receipt email failed for %s: %v", ev.Email, err)
	}

	meta := ev.Meta
	if ev.TxID != "" {
		if meta == nil {
			meta = map[string]interface{}{}
		}
		meta["txId"] = ev.TxID
	}
	if err := s.mail.Send(s.adminEmail, "Feedlooply — New Paid Customer", AdminNotifyEmail("paid", ev.Email, ev.Name, meta)); err != nil {
		logging.Errorf("payment admin email failed: %v", err)
	}

	if err := s.sheets.AppendPayment(ctx, models.PaymentRow{
		Email:     ev.Email,
		Name:      ev.Name,
		Amount:    ev.Amount,
		Currency:  currency,
		Country:   ev.Country,
		Plan:      plan,
		Status:    ev.Status,
		OrderID:   ev.OrderID,
		PaymentID: ev.TxID,
	}); err != nil {
		logging.Errorf("sheets payment append error: %v", err)
		return false
	}
	return true
}

// minorUnitsString renders the amount the way the checkout widget reported
// it; zero and missing amounts are omitted from the receipt.
func minorUnitsString(amount int64) string {
	if amount <= 0 {
		return ""
	}
	return strconv.FormatInt(amount, 10)
}
