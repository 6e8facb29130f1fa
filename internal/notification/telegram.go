package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

// sender is the part of *tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

// NewTelegramNotifier returns a notifier that only logs when token is empty.
func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: log}, nil
}

// NotifyAttendeeRegistered сообщает экспоненту о новом участнике.
func (n *TelegramNotifier) NotifyAttendeeRegistered(ctx context.Context, exhibitor, attendee *domain.User, event *domain.Event) {
	n.send(ctx, exhibitor.TelegramChatID, attendeeRegisteredText(attendee, event))
}

// NotifyEventDeleted сообщает зарегистрированному участнику об отмене.
func (n *TelegramNotifier) NotifyEventDeleted(ctx context.Context, attendee *domain.User, event *domain.Event) {
	n.send(ctx, attendee.TelegramChatID, eventDeletedText(event))
}

func attendeeRegisteredText(attendee *domain.User, event *domain.Event) string {
	return fmt.Sprintf(
		"*New attendee registered*\n\nEvent: %s\nAttendee: %s\nSeats taken: %d of %d",
		escape(event.Title),
		escape(attendee.Name),
		len(event.Attendees), event.Capacity,
	)
}

func eventDeletedText(event *domain.Event) string {
	return fmt.Sprintf(
		"*Event cancelled*\n\nEvent: %s\nDate: %s\nLocation: %s",
		escape(event.Title),
		event.Datetime.Format(timeLayout),
		escape(event.Location),
	)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	switch {
	case n.bot == nil:
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	case chatID == nil:
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	case ctx.Err() != nil:
		n.logger.Debug("notification skipped (context cancelled)", logger.Int64("chat_id", *chatID))
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
