package models

// SubscriberRow is one appended row in the Subscribers sheet.
// Column order: timestamp, email, name, country, source.
type SubscriberRow struct {
	Email     string
	Name      string
	Country   string
	Source    string
	CreatedAt string
}

// PaymentRow is one appended row in the Payments sheet.
// Column order: timestamp, email, name, amount, currency, country, plan,
// status, orderId, paymentId.
type PaymentRow struct {
	Email     string
	Name      string
	Amount    int64
	Currency  string
	Country   string
	Plan      string
	Status    string
	OrderID   string
	PaymentID string
	CreatedAt string
}
