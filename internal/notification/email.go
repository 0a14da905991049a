package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/wb-go/wbf/logger"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

// EmailNotifier delivers the admin alert and customer confirmation through
// the Resend API. With an empty API key it degrades to a disabled notifier
// that only logs.
type EmailNotifier struct {
	client     *resend.Client
	from       string
	adminEmail string
	logger     logger.Logger
}

func NewEmailNotifier(apiKey, from, adminEmail string, log logger.Logger) *EmailNotifier {
	if apiKey == "" {
		log.Warn("resend api key is empty, email notifications disabled")
		return &EmailNotifier{from: from, adminEmail: adminEmail, logger: log}
	}

	return &EmailNotifier{
		client:     resend.NewClient(apiKey),
		from:       from,
		adminEmail: adminEmail,
		logger:     log,
	}
}

func (n *EmailNotifier) NotifyBookingReceived(ctx context.Context, b *domain.Booking) {
	if n.adminEmail != "" {
		n.send(ctx, n.adminEmail,
			fmt.Sprintf("New Shisha Cafe Booking - %s %s", b.FirstName, b.LastName),
			adminAlertBody(b),
		)
	}

	n.send(ctx, b.Email, "Booking Confirmation - Shisha Cafe", customerConfirmationBody(b))
}

func (n *EmailNotifier) NotifyMembershipExpired(ctx context.Context, m *domain.Member) {
	body := fmt.Sprintf(
		"Hello %s!\n\n"+
			"Your %s membership expired on %s.\n"+
			"Renew it to keep enjoying your member discount on every booking.\n\n"+
			"Shisha Cafe",
		m.FirstName, m.MembershipType, m.ExpiryDate.Format("2 January 2006"),
	)
	n.send(ctx, m.Email, "Your Shisha Cafe membership has expired", body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.client == nil {
		n.logger.Debug("email skipped (notifier disabled)", logger.String("subject", subject))
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	sent, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("email sent",
		logger.String("to", to),
		logger.String("subject", subject),
		logger.String("message_id", sent.Id),
	)
}

func adminAlertBody(b *domain.Booking) string {
	var sb strings.Builder
	sb.WriteString("New Shisha Cafe Booking Alert!\n\n")

	sb.WriteString("Customer Information:\n")
	fmt.Fprintf(&sb, "- Name: %s %s\n", b.FirstName, b.LastName)
	fmt.Fprintf(&sb, "- Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "- Phone: %s\n", b.Phone)
	if b.Instagram != "" {
		fmt.Fprintf(&sb, "- Instagram: @%s\n", b.Instagram)
	}

	sb.WriteString("\nEvent Details:\n")
	fmt.Fprintf(&sb, "- Date: %s\n", b.EventDate)
	fmt.Fprintf(&sb, "- Time: %s\n", b.EventTime)
	fmt.Fprintf(&sb, "- Location: %s\n", b.Location)
	fmt.Fprintf(&sb, "- Guest Count: %s\n", b.GuestCount)
	eventType := b.EventType
	if eventType == "" {
		eventType = "Not specified"
	}
	fmt.Fprintf(&sb, "- Event Type: %s\n", eventType)

	sb.WriteString("\nServices Requested:\n")
	for _, svc := range b.Services {
		fmt.Fprintf(&sb, "- %s\n", svc)
	}

	if b.FlavourPreferences != "" {
		fmt.Fprintf(&sb, "\nFlavour Preferences: %s\n", b.FlavourPreferences)
	}
	if b.SpecialRequirements != "" {
		fmt.Fprintf(&sb, "\nSpecial Requirements: %s\n", b.SpecialRequirements)
	}

	fmt.Fprintf(&sb, "\nBooking ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Received: %s\n", b.CreatedAt.Format(time.RFC1123))

	return sb.String()
}

func customerConfirmationBody(b *domain.Booking) string {
	return fmt.Sprintf(
		"Hello %s!\n\n"+
			"We've received your booking request and will contact you shortly to confirm the details.\n\n"+
			"Your Booking Details:\n"+
			"- Date: %s\n"+
			"- Time: %s\n"+
			"- Location: %s\n"+
			"- Guest Count: %s\n"+
			"- Services: %s\n\n"+
			"We'll be in touch soon!\n"+
			"Booking Reference: %s\n",
		b.FirstName, b.EventDate, b.EventTime, b.Location, b.GuestCount,
		strings.Join(b.Services, ", "), b.ID,
	)
}
