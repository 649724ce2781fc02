// Package telegram runs the long-polling bot that links a Telegram
// chat to an account. The web client asks for a login code, the user
// sends it to the bot with /start, and the bot binds chat -> user.
// Pending codes live in the TTL store so a restart loses nothing.
package telegram

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phka/internal/repositories"
	"phka/pkg/otpstore"
	"phka/pkg/utils"
)

const loginCodeTTL = 5 * time.Minute

type BotManager struct {
	bot      *tgbotapi.BotAPI
	userRepo repositories.UserRepository
	tokens   otpstore.TokenStore
	stopChan chan struct{}
}

func NewBotManager(token string, userRepo repositories.UserRepository, tokens otpstore.TokenStore) (*BotManager, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("invalid bot token: %w", err)
	}
	return &BotManager{
		bot:      bot,
		userRepo: userRepo,
		tokens:   tokens,
		stopChan: make(chan struct{}),
	}, nil
}

// IssueLoginCode stores a pending code for the user; the code is what
// the user forwards to the bot.
func (m *BotManager) IssueLoginCode(ctx context.Context, userID string) (string, error) {
	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return "", err
	}
	if err := m.tokens.Set(ctx, "tglogin:"+code, userID, loginCodeTTL); err != nil {
		return "", err
	}
	return code, nil
}

// LoginCodePending reports whether the code is still waiting for the
// bot to consume it. false means linked or expired.
func (m *BotManager) LoginCodePending(ctx context.Context, code string) (bool, error) {
	_, ok, err := m.tokens.Peek(ctx, "tglogin:"+code)
	return ok, err
}

func (m *BotManager) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := m.bot.GetUpdatesChan(u)

	log.Printf("Telegram bot polling as @%s", m.bot.Self.UserName)

	go func() {
		for {
			select {
			case <-m.stopChan:
				log.Println("Telegram bot polling stopped")
				return
			case update := <-updates:
				m.handleUpdate(update)
			}
		}
	}()
}

func (m *BotManager) Stop() {
	close(m.stopChan)
	m.bot.StopReceivingUpdates()
}

func (m *BotManager) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	if update.Message.Command() != "start" {
		m.reply(chatID, "Send /start <code> with the code from the app to link your account.")
		return
	}

	code := update.Message.CommandArguments()
	if code == "" {
		m.reply(chatID, "Welcome! Open the app and request a login code, then send /start <code> here.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := m.tokens.Consume(ctx, "tglogin:"+code)
	if err != nil {
		log.Printf("Error consuming login code: %v", err)
		m.reply(chatID, "Something went wrong, please try again.")
		return
	}
	if userID == "" {
		m.reply(chatID, "That code is invalid or expired. Request a new one from the app.")
		return
	}

	user, err := m.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		m.reply(chatID, "Account not found, please sign in again.")
		return
	}

	tgID := update.Message.From.ID
	user.TelegramID = &tgID
	user.TelegramChat = &chatID
	if err := m.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error linking telegram chat: %v", err)
		m.reply(chatID, "Something went wrong, please try again.")
		return
	}

	m.reply(chatID, "Your account is linked. You can return to the app.")
}

func (m *BotManager) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := m.bot.Send(msg); err != nil {
		log.Printf("Error sending telegram message: %v", err)
	}
}
