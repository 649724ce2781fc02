package sheet_fx

import (
	"go.uber.org/fx"

	"phka/internal/repositories"
	"phka/internal/services"
)

var Module = fx.Provide(provideSheetService)

func provideSheetService(
	guestRepo repositories.GuestRepository,
	giftRepo repositories.GiftRepository,
	eventRepo repositories.EventRepository,
	planRepo repositories.IPlanRepository) services.SheetServiceInterface {
	return services.NewSheetService(guestRepo, giftRepo, eventRepo, planRepo)
}
