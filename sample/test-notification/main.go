// Command test-notification sends one sample inquiry notification through the
// configured notify driver, without touching the database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bestbuycongo/starlink-inquiry/internal/config"
	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/integration/emailapi"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/mail"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var notifier usecase.Notifier
	switch cfg.Notify.Driver {
	case config.NotifyEmailAPI:
		notifier = emailapi.NewClient(cfg.EmailAPI.URL, cfg.EmailAPI.ServiceID, cfg.EmailAPI.PublicKey, cfg.EmailAPI.AccessToken)
	case config.NotifySMTP:
		notifier = mail.NewEmailSender(
			cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password,
			cfg.SMTP.FromEmail, cfg.SMTP.FromName, cfg.SMTP.Enabled,
		)
	default:
		log.Fatalf("driver %q is not supported here; use smtp or emailapi", cfg.Notify.Driver)
	}

	in := entity.NewInquiryInput()
	in.FullName = "Test Inquiry"
	in.Email = "test.inquiry@example.com"
	in.PhoneNumber = "812345678"
	in.City = "Kinshasa"
	in.Description = "Sample notification sent by test-notification"

	inquiry := entity.NewInquiry("test-"+time.Now().Format("20060102150405"), entity.English, in, time.Now())
	n := usecase.NewNotification(cfg.Notify.TemplateID, cfg.Notify.Recipient, inquiry)

	fmt.Printf("Sending %s via %s to %s...\n", cfg.Notify.TemplateID, cfg.Notify.Driver, cfg.Notify.Recipient)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := notifier.Notify(ctx, n); err != nil {
		log.Fatalf("notification failed: %v", err)
	}

	fmt.Println("Notification sent.")
}
