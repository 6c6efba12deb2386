package models

import (
	"time"
)

// EmailLog records the outcome of one transactional email send
type EmailLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Recipient string    `json:"recipient" gorm:"size:255;index"`
	Subject   string    `json:"subject" gorm:"size:255"`
	Transport string    `json:"transport" gorm:"size:32"` // smtp, brevo or dry-run
	Status    string    `json:"status" gorm:"size:32"`    // sent or failed
	ErrorMsg  string    `json:"error_msg" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for EmailLog
func (EmailLog) TableName() string {
	return "email_log"
}

// WebinarRegistration records one webinar signup
type WebinarRegistration struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255"`
	Email      string    `json:"email" gorm:"size:255;index"`
	Phone      string    `json:"phone" gorm:"size:64"`
	Company    string    `json:"company" gorm:"size:255"`
	Role       string    `json:"role" gorm:"size:255"`
	Experience string    `json:"experience" gorm:"size:255"`
	Goals      string    `json:"goals" gorm:"type:text"`
	Challenges string    `json:"challenges" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for WebinarRegistration
func (WebinarRegistration) TableName() string {
	return "webinar_registration"
}
