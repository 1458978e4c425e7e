package output

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

// TelegramNotifier sends one-way draft notifications to a chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) Notify(draft models.Draft) error {

	text := fmt.Sprintf("Signal detected: %v (%v)\nSubject: %v",
		draft.Company, draft.Role, draft.Subject)

	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text))
	return errors.Wrap(err, "failed to send telegram notification")
}
