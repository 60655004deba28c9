package mail

import "gopkg.in/gomail.v2"

// InquiryEmailData is what the inquiry templates render.
type InquiryEmailData struct {
	ID          string
	FullName    string
	Email       string
	Phone       string
	City        string
	Company     string
	Description string
	Language    string
	SubmittedAt string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromEmail string
	FromName  string
	Enabled   bool

	dialer dialer
}
