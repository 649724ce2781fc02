package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"phka/internal/infra"
	"phka/pkg/otpstore"
)

var Module = fx.Provide(
	provideRedis, provideTokenStore)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideTokenStore(client *redis.Client) otpstore.TokenStore {
	return otpstore.NewRedisStore(client, "phka")
}
