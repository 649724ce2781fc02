package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"phka/cmd/fx/auth_fx"
	"phka/cmd/fx/controllers_fx"
	"phka/cmd/fx/dashboard_fx"
	"phka/cmd/fx/db_fx"
	"phka/cmd/fx/event_fx"
	"phka/cmd/fx/gift_fx"
	"phka/cmd/fx/guest_fx"
	"phka/cmd/fx/plan_fx"
	"phka/cmd/fx/redis_fx"
	"phka/cmd/fx/sheet_fx"
	"phka/cmd/fx/storage_fx"
	"phka/cmd/fx/telegram_fx"
	"phka/cmd/fx/template_fx"
	"phka/cmd/fx/user_fx"
	"phka/internal/api/controllers"
	"phka/internal/infra"
	"phka/internal/telegram"
	"phka/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		auth_fx.Module,
		user_fx.Module,
		plan_fx.Module,
		event_fx.Module,
		guest_fx.Module,
		gift_fx.Module,
		template_fx.Module,
		dashboard_fx.Module,
		sheet_fx.Module,
		storage_fx.Module,
		telegram_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartBot),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func StartBot(lc fx.Lifecycle, bot *telegram.BotManager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			bot.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			bot.Stop()
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	guestController *controllers.GuestController,
	giftController *controllers.GiftController,
	planController *controllers.PlanController,
	userController *controllers.UserController,
	templateController *controllers.TemplateController,
	dashboardController *controllers.DashboardController,
	sheetController *controllers.SheetController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController, eventController, guestController, giftController,
		planController, userController, templateController,
		dashboardController, sheetController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	guestController *controllers.GuestController,
	giftController *controllers.GiftController,
	planController *controllers.PlanController,
	userController *controllers.UserController,
	templateController *controllers.TemplateController,
	dashboardController *controllers.DashboardController,
	sheetController *controllers.SheetController,
	uploadController *controllers.UploadController) {

	// Public surface: auth, invite previews, the import template.
	authGroup := r.Group("/auth")
	authGroup.POST("/send-otp", middleware.RateLimitMiddleware(rate.Limit(1), 3), authController.SendOtp)
	authGroup.POST("/verify-otp", authController.VerifyOtp)
	authGroup.POST("/set-password", authController.SetPassword)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/telegram", authController.TelegramLogin)

	r.GET("/preview", templateController.Preview)
	r.GET("/guests/import-template", sheetController.ImportTemplate)

	// Everything below requires a session.
	api := r.Group("/", middleware.JWTAuthMiddleware())

	api.GET("/me", userController.Me)
	api.POST("/auth/telegram/link-code", authController.TelegramLinkCode)
	api.GET("/auth/telegram/link-code/:code", authController.TelegramLinkStatus)
	api.POST("/upload", uploadController.UploadImage)

	events := api.Group("/events")
	events.POST("", eventController.CreateEvent)
	events.GET("", eventController.ListEvents)
	events.GET("/:id", eventController.GetEvent)
	events.PUT("/:id", eventController.UpdateEvent)
	events.DELETE("/:id", eventController.DeleteEvent)
	events.GET("/:id/qrcode", eventController.InviteQRCode)
	events.GET("/:id/dashboard", dashboardController.EventDashboard)

	events.POST("/:id/schedules", eventController.CreateSchedule)
	events.GET("/:id/schedules", eventController.ListSchedules)

	events.POST("/:id/guests", guestController.CreateGuest)
	events.GET("/:id/guests", guestController.ListGuests)
	events.GET("/:id/guests/export", sheetController.ExportGuests)
	events.POST("/:id/guests/import", sheetController.ImportGuests)

	events.POST("/:id/tags", guestController.CreateTag)
	events.GET("/:id/tags", guestController.ListTags)
	events.DELETE("/:id/tags/:tagId", guestController.DeleteTag)
	events.POST("/:id/groups", guestController.CreateGroup)
	events.GET("/:id/groups", guestController.ListGroups)
	events.DELETE("/:id/groups/:groupId", guestController.DeleteGroup)

	events.POST("/:id/gifts", giftController.CreateGift)
	events.GET("/:id/gifts", giftController.ListGifts)
	events.GET("/:id/gifts/export", sheetController.ExportGifts)
	events.POST("/:id/expenses", giftController.CreateExpense)
	events.GET("/:id/expenses", giftController.ListExpenses)

	events.POST("/:id/templates", templateController.AttachTemplate)
	events.PUT("/:id/templates/:bindingId/default", templateController.SetDefaultTemplate)

	api.PUT("/schedules/:id", eventController.ReplaceSchedule)
	api.DELETE("/schedules/:id", eventController.DeleteSchedule)
	api.GET("/guests/:id", guestController.GetGuest)
	api.PUT("/guests/:id", guestController.UpdateGuest)
	api.DELETE("/guests/:id", guestController.DeleteGuest)
	api.DELETE("/gifts/:id", giftController.DeleteGift)
	api.PUT("/expenses/:id", giftController.UpdateExpense)
	api.DELETE("/expenses/:id", giftController.DeleteExpense)

	api.GET("/templates", templateController.GetAllTemplates)
	api.GET("/plans", planController.GetAllPlans)
	api.GET("/plans/:id", planController.GetPlanById)

	admin := api.Group("/admin", middleware.RoleMiddleware("admin"))
	admin.GET("/dashboard", dashboardController.AdminDashboard)
	admin.GET("/users", userController.GetAllUsers)
	admin.GET("/users/:id", userController.GetUser)
	admin.POST("/plans", planController.CreatePlan)
	admin.DELETE("/plans/:id", planController.DeletePlan)
	admin.POST("/plans/assign", planController.AssignPlan)
	admin.POST("/templates", templateController.CreateTemplate)
	admin.DELETE("/templates/:id", templateController.DeleteTemplate)
}
