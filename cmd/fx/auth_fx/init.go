package auth_fx

import (
	"os"

	"go.uber.org/fx"

	"phka/internal/repositories"
	"phka/internal/services"
	"phka/pkg/otpstore"
)

var Module = fx.Provide(
	provideSMSClient, provideAuthService)

func provideSMSClient() services.SMSSender {
	return services.NewSMSClient(services.SMSConfig{
		GatewayURL: os.Getenv("SMS_GATEWAY_URL"),
		APIKey:     os.Getenv("SMS_API_KEY"),
		Sender:     os.Getenv("SMS_SENDER"),
	})
}

func provideAuthService(userRepo repositories.UserRepository, sms services.SMSSender, tokens otpstore.TokenStore) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, sms, tokens, os.Getenv("TELEGRAM_BOT_TOKEN"))
}
