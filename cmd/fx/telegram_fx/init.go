package telegram_fx

import (
	"os"

	"go.uber.org/fx"

	"phka/internal/repositories"
	"phka/internal/telegram"
	"phka/pkg/otpstore"
)

var Module = fx.Provide(provideBotManager)

func provideBotManager(userRepo repositories.UserRepository, tokens otpstore.TokenStore) (*telegram.BotManager, error) {
	return telegram.NewBotManager(os.Getenv("TELEGRAM_BOT_TOKEN"), userRepo, tokens)
}
