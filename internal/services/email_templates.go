package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"feedlooply-api/internal/config"
	"feedlooply-api/internal/models"
)

// emailLayout wraps body HTML in the shared branded frame
func emailLayout(title, body string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"><title>%s</title></head>
		<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #111;">
			<div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
				<h1 style="color: #333; font-size: 20px; margin: 0 0 16px 0;">%s</h1>
				%s
				<p style="color: #999; font-size: 12px; margin-top: 30px;">Feedlooply — collect better product feedback.</p>
			</div>
		</body>
		</html>
	`, title, title, body)
}

func firstName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return "there"
}

// SubscribeConfirmationEmail is sent to a new newsletter subscriber
func SubscribeConfirmationEmail(name string) string {
	body := fmt.Sprintf(`
		<p style="margin:0 0 12px 0;">Hi %s,</p>
		<p style="margin:0 0 12px 0;">Thanks for subscribing to Feedlooply. You'll get early access invites, product updates, and news about our <strong>Early Founder Lifetime Deal</strong>.</p>
		<ul style="margin:0 0 12px 18px;padding:0;">
			<li>Occasional emails — only when it's truly useful</li>
			<li>Early-feature announcements and changelogs</li>
			<li>Ways to collect better feedback with Feedlooply</li>
		</ul>
		<p style="margin:16px 0 0 0;"><a href="%s" style="background:#2563eb;color:#fff;padding:10px 20px;text-decoration:none;border-radius:6px;display:inline-block;">See the lifetime deal</a></p>
	`, firstName(name), config.AppConfig.SiteURL)
	return emailLayout("Thanks for subscribing", body)
}

// PaymentSuccessParams carries the details shown in the receipt email
type PaymentSuccessParams struct {
	Name          string
	Amount        string
	Currency      string
	Plan          string
	TransactionID string
	AccountEmail  string
	TempPassword  string
}

// PaymentSuccessEmail is the receipt sent after a verified payment
func PaymentSuccessEmail(p PaymentSuccessParams) string {
	plan := p.Plan
	if plan == "" {
		plan = "Early Founder Lifetime Deal — one-time, lifetime access"
	}
	value := strings.TrimSpace(p.Currency + " " + p.Amount)

	var b strings.Builder
	fmt.Fprintf(&b, `<p style="margin:0 0 12px 0;">Hi %s,</p>`, firstName(p.Name))
	if value != "" {
		fmt.Fprintf(&b, `<p style="margin:0 0 12px 0;">Your payment for <strong>%s</strong> (%s) was successful.</p>`, plan, value)
	} else {
		fmt.Fprintf(&b, `<p style="margin:0 0 12px 0;">Your payment for <strong>%s</strong> was successful.</p>`, plan)
	}
	if p.TransactionID != "" {
		fmt.Fprintf(&b, `<p style="margin:0 0 12px 0;">Transaction ID: <code style="background:#f6f6f6;border-radius:4px;padding:2px 6px;">%s</code></p>`, p.TransactionID)
	}
	if p.AccountEmail != "" && p.TempPassword != "" {
		fmt.Fprintf(&b, `
			<div style="margin:16px 0 12px 0;padding:12px;border:1px solid #e6f0ff;border-radius:8px;background:#f6faff;">
				<p style="margin:0 0 8px 0;"><strong>Your account details</strong> — you can change your password later from settings:</p>
				<p style="margin:0 0 4px 0;"><strong>Email:</strong> <code>%s</code></p>
				<p style="margin:0;"><strong>Password:</strong> <code>%s</code></p>
			</div>`, p.AccountEmail, p.TempPassword)
	}
	b.WriteString(`<p style="margin:0 0 8px 0;">This email is your receipt. Access details follow shortly.</p>`)
	return emailLayout("Payment successful", b.String())
}

// AdminNotifyEmail alerts the admin address about a new subscriber or payer
func AdminNotifyEmail(kind, email, name string, meta map[string]interface{}) string {
	title := "New Subscriber"
	if kind == "paid" {
		title = "New Paid Customer"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<p style="margin:0 0 4px 0;">Name: %s</p>`, orDash(name))
	fmt.Fprintf(&b, `<p style="margin:0 0 12px 0;">Email: <a href="mailto:%s">%s</a></p>`, email, email)
	if len(meta) > 0 {
		pretty, err := json.MarshalIndent(meta, "", "  ")
		if err == nil {
			fmt.Fprintf(&b, `<pre style="margin:0;padding:12px;background:#F3F4F6;border:1px solid #E5E7EB;border-radius:8px;font-size:12px;white-space:pre-wrap;">%s</pre>`, string(pretty))
		}
	}
	return emailLayout(title, b.String())
}

// WebinarConfirmationEmail confirms a webinar registration
func WebinarConfirmationEmail(name string) string {
	body := fmt.Sprintf(`
		<p style="margin:0 0 12px 0;">Hi %s,</p>
		<p style="margin:0 0 12px 0;">Thank you for registering for our webinar!</p>
		<div style="background:#fff;padding:15px;border-radius:5px;margin:20px 0;">
			<h3 style="margin:0 0 10px 0;">Webinar details</h3>
			<p style="margin:0 0 4px 0;"><strong>Date:</strong> September 8, 2025</p>
			<p style="margin:0 0 4px 0;"><strong>Time:</strong> 7:00 PM IST</p>
			<p style="margin:0;"><strong>Duration:</strong> 1 hour</p>
		</div>
		<p style="margin:0 0 12px 0;">We'll send you the meeting link closer to the date.</p>
		<p style="margin:0;">Best regards,<br>The Feedlooply Team</p>
	`, firstName(name))
	return emailLayout("Webinar registration confirmed", body)
}

// WebinarAdminEmail alerts the admin address about a new registration
func WebinarAdminEmail(reg models.WebinarRegistration) string {
	body := fmt.Sprintf(`
		<p style="margin:0 0 4px 0;"><strong>Name:</strong> %s</p>
		<p style="margin:0 0 4px 0;"><strong>Email:</strong> %s</p>
		<p style="margin:0 0 4px 0;"><strong>Phone:</strong> %s</p>
		<p style="margin:0 0 4px 0;"><strong>Company:</strong> %s</p>
		<p style="margin:0 0 4px 0;"><strong>Experience:</strong> %s</p>
		<p style="margin:0;"><strong>Registered:</strong> %s</p>
	`, reg.Name, reg.Email, orDash(reg.Phone), orDash(reg.Company), orDash(reg.Experience),
		time.Now().Format(time.RFC1123))
	return emailLayout("New Webinar Registration", body)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
