package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"phka/internal/repositories"
	"phka/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideScheduleRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, scheduleRepo repositories.ScheduleRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo, scheduleRepo)
}
