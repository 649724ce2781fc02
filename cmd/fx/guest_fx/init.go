package guest_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"phka/internal/repositories"
	"phka/internal/services"
)

var Module = fx.Provide(
	provideGuestRepo, provideLabelRepo, provideGuestService)

func provideGuestRepo(db *gorm.DB) repositories.GuestRepository {
	return repositories.NewGuestRepository(db)
}

func provideLabelRepo(db *gorm.DB) repositories.LabelRepository {
	return repositories.NewLabelRepository(db)
}

func provideGuestService(
	guestRepo repositories.GuestRepository,
	eventRepo repositories.EventRepository,
	planRepo repositories.IPlanRepository,
	labelRepo repositories.LabelRepository) services.GuestServiceInterface {
	return services.NewGuestService(guestRepo, eventRepo, planRepo, labelRepo)
}
