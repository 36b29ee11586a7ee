package notifications

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phicoffee/internal/adapter/persistence/rowcodec"
	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase/interfaces"
)

var (
	ErrMissingTelegramToken  = errors.New("missing TELEGRAM_BOT_TOKEN")
	ErrMissingTelegramChatID = errors.New("missing or invalid TELEGRAM_CHAT_ID")
)

// TelegramNotifier sends the new-order message to the vendor's fixed chat.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	codec    *rowcodec.Codec
	mockMode bool
}

var _ interfaces.IOrderNotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(token, chatID string, codec *rowcodec.Codec) (*TelegramNotifier, error) {
	if isNotifierMockEnabled() {
		log.Printf("[notify][telegram] mock mode enabled")
		return &TelegramNotifier{codec: codec, mockMode: true}, nil
	}

	if token == "" {
		log.Printf("[notify][telegram] missing TELEGRAM_BOT_TOKEN")
		return nil, ErrMissingTelegramToken
	}
	id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64)
	if err != nil {
		log.Printf("[notify][telegram] invalid TELEGRAM_CHAT_ID err=%v", err)
		return nil, ErrMissingTelegramChatID
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[notify][telegram] failed creating bot client err=%v", err)
		return nil, err
	}
	log.Printf("[notify][telegram] bot client initialized account=%s", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, chatID: id, codec: codec}, nil
}

func (n *TelegramNotifier) NotifyNewOrder(ctx context.Context, o entities.Order) error {
	text := n.codec.ComposeNotification(o, time.Now())

	if n.mockMode {
		log.Printf("[notify][telegram] mock send order_id=%s text_len=%d", o.ID, len(text))
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[notify][telegram] send failed order_id=%s err=%v", o.ID, err)
		return err
	}
	log.Printf("[notify][telegram] send success order_id=%s", o.ID)
	return nil
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TELEGRAM_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
