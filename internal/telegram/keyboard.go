package telegram

import (
	"github.com/go-telegram/bot/models"
)

// Labels of the persistent reply keyboard. Pressing a button makes Telegram
// send its label as a plain text message, so the dispatcher matches these
// literals during command parsing.
const (
	ModeButtonLabel  = "⚙️ Mode"
	ResetButtonLabel = "🔄 Reset"
)

// MainKeyboard is the persistent reply keyboard attached to every bot reply:
// a mode-selector shortcut and a reset shortcut. Resizable, never one-time.
func MainKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: ModeButtonLabel},
				{Text: ResetButtonLabel},
			},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: false,
	}
}

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}
