package gift_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"phka/internal/repositories"
	"phka/internal/services"
)

var Module = fx.Provide(
	provideGiftRepo, provideExpenseRepo, provideGiftService)

func provideGiftRepo(db *gorm.DB) repositories.GiftRepository {
	return repositories.NewGiftRepository(db)
}

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideGiftService(
	giftRepo repositories.GiftRepository,
	expenseRepo repositories.ExpenseRepository,
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository) services.GiftServiceInterface {
	return services.NewGiftService(giftRepo, expenseRepo, eventRepo, guestRepo)
}
