package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"cryptoquiz/internal/quiz"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	log      *logrus.Logger
	deck     quiz.Quiz
	sessions map[int64]*chatSession
}

type chatSession struct {
	session   *quiz.Session
	presenter *chatPresenter
}

func NewBot(token string, deck quiz.Quiz, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		log:      log,
		deck:     deck,
		sessions: make(map[int64]*chatSession),
	}, nil
}

// Start runs the long-polling update loop. Updates arrive on a single
// channel, so each session is still driven by one logical thread.
func (b *Bot) Start() {
	b.log.WithField("account", b.api.Self.UserName).Info("bot authorised")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for update := range b.api.GetUpdatesChan(updateConfig) {
		if update.Message != nil {
			b.handleMessage(update.Message)
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.send(tgbotapi.NewMessage(chatID, "Welcome to the crypto trading quiz! Send /quiz to begin."))
	case "quiz":
		b.startQuiz(chatID)
	default:
		b.send(tgbotapi.NewMessage(chatID, "Unknown command. Send /quiz to play."))
	}
}

func (b *Bot) startQuiz(chatID int64) {
	presenter := &chatPresenter{bot: b, chatID: chatID}
	session, err := quiz.NewSession(b.deck, presenter)
	if err != nil {
		b.log.WithError(err).Error("failed to start session")
		b.send(tgbotapi.NewMessage(chatID, "The quiz is unavailable right now."))
		return
	}

	b.sessions[chatID] = &chatSession{session: session, presenter: presenter}
	b.log.WithField("chat_id", chatID).Info("session started")
	session.Start()
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	live, ok := b.sessions[chatID]
	if !ok {
		b.answerCallback(callback.ID, "Send /quiz to start a new quiz.")
		return
	}

	if index, isSelection := parseSelection(callback.Data); isSelection {
		b.handleSelection(callback, live, index)
		return
	}

	if callback.Data == submitCallback {
		b.answerCallback(callback.ID, "")
		b.handleSubmit(chatID, live)
		return
	}

	b.answerCallback(callback.ID, "")
}

func (b *Bot) handleSelection(callback *tgbotapi.CallbackQuery, live *chatSession, index int) {
	options := live.presenter.options
	if index < 0 || index >= len(options) {
		b.answerCallback(callback.ID, "")
		return
	}

	if err := live.session.Select(options[index]); err != nil {
		b.answerCallback(callback.ID, "This quiz is already finished.")
		return
	}
	// The toast is the selection indicator; repeated taps just replace it.
	b.answerCallback(callback.ID, "Selected: "+options[index])
}

func (b *Bot) handleSubmit(chatID int64, live *chatSession) {
	err := live.session.Submit()
	switch {
	case err == nil:
		if live.session.Finished() {
			delete(b.sessions, chatID)
			b.log.WithField("chat_id", chatID).Info("session completed")
		}
	case errors.Is(err, quiz.ErrNoSelection):
		// The presenter already warned the chat.
	case errors.Is(err, quiz.ErrSessionClosed):
		delete(b.sessions, chatID)
		b.send(tgbotapi.NewMessage(chatID, "That quiz is finished. Send /quiz to play again."))
	default:
		b.log.WithError(err).Error("submit failed")
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.WithError(err).Warn("failed to answer callback")
	}
}

func (b *Bot) send(message tgbotapi.Chattable) {
	if _, err := b.api.Send(message); err != nil {
		b.log.WithError(err).Warn("failed to send message")
	}
}

// chatPresenter renders one chat's session as Telegram messages. options
// mirrors the current question so callbacks can map indexes back to
// option strings.
type chatPresenter struct {
	bot     *Bot
	chatID  int64
	number  int
	options []string
}

func (p *chatPresenter) RenderQuestion(text string, options []string) {
	p.number++
	p.options = options

	message := tgbotapi.NewMessage(p.chatID, fmt.Sprintf("Q%d: %s", p.number, text))
	message.ReplyMarkup = optionKeyboard(options)
	p.bot.send(message)
}

func (p *chatPresenter) NotifyNoSelection() {
	p.bot.send(tgbotapi.NewMessage(p.chatID, "Please select an answer before submitting."))
}

func (p *chatPresenter) NotifyResult(score, total int) {
	p.bot.send(tgbotapi.NewMessage(p.chatID, fmt.Sprintf("Quiz completed! You scored %d out of %d.", score, total)))
}
