package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"phka/internal/repositories"
	"phka/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository,
	giftRepo repositories.GiftRepository,
	expenseRepo repositories.ExpenseRepository,
	adminRepo repositories.DashboardRepository) services.DashboardService {
	return services.NewDashboardService(eventRepo, guestRepo, giftRepo, expenseRepo, adminRepo)
}
