package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	selectCallbackPrefix = "select_"
	submitCallback       = "submit"
)

// optionKeyboard lays out one button per option plus a submit row. Buttons
// carry the option index, not the text, so long options stay within
// Telegram's callback-data limit.
func optionKeyboard(options []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options)+1)
	for idx, option := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%c. %s", 'A'+idx, option),
				selectCallbackPrefix+strconv.Itoa(idx),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Submit answer", submitCallback),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func parseSelection(data string) (int, bool) {
	if !strings.HasPrefix(data, selectCallbackPrefix) {
		return -1, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(data, selectCallbackPrefix))
	if err != nil {
		return -1, false
	}
	return index, true
}
