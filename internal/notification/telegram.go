package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

// TelegramNotifier pings the admin chat about new bookings. Customer-facing
// messages stay on email; this channel is an internal heads-up only.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: log}, nil
}

func (n *TelegramNotifier) NotifyBookingReceived(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+
			"Customer: %s %s\n"+
			"Date: %s %s\n"+
			"Location: %s\n"+
			"Guests: %s\n"+
			"Services: %s",
		b.FirstName, b.LastName,
		b.EventDate, b.EventTime,
		b.Location, b.GuestCount,
		strings.Join(b.Services, ", "),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyMembershipExpired(ctx context.Context, m *domain.Member) {
	text := fmt.Sprintf(
		"*Membership expired*\n\n"+
			"Member: %s %s (%s)\n"+
			"Tier: %s",
		m.FirstName, m.LastName, m.Email, m.MembershipType,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("telegram notification skipped (disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("telegram notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
