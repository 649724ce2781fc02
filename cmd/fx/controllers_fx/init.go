package controllers_fx

import (
	"go.uber.org/fx"

	"phka/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewGuestController),
	fx.Provide(controllers.NewGiftController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewTemplateController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewSheetController),
	fx.Provide(controllers.NewUploadController))
