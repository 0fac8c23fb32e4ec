package routes

import (
	"PropInspect-Backend/internal/api/handlers"
	"PropInspect-Backend/internal/middleware"
	"PropInspect-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	InspectionHandler handlers.InspectionHandler
	RoomHandler       handlers.RoomHandler
	PhotoHandler      handlers.PhotoHandler
	AnalysisHandler   handlers.AnalysisHandler
	WizardHandler     handlers.WizardHandler
	BillingHandler    handlers.BillingHandler
	GeocodeHandler    handlers.GeocodeHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inspections()
	c.Sharing()
	c.Analysis()
	c.Billing()
	c.Geocode()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Inspections() {
	inspections := c.App.Group("/api/v1/inspections", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	inspections.Post("", c.InspectionHandler.CreateInspection)
	inspections.Get("", c.InspectionHandler.GetInspections)
	inspections.Get("/:id", c.InspectionHandler.GetInspection)
	inspections.Put("/:id", c.InspectionHandler.UpdateInspection)
	inspections.Post("/:id/cancel", c.InspectionHandler.CancelInspection)
	inspections.Delete("/:id", c.InspectionHandler.DeleteInspection)
	inspections.Get("/:id/report", c.InspectionHandler.GetReport)

	// Room selection
	inspections.Get("/:id/rooms", c.RoomHandler.GetRooms)
	inspections.Get("/:id/rooms/catalog", c.RoomHandler.GetStandardCatalog)
	inspections.Post("/:id/rooms/toggle", c.RoomHandler.ToggleStandardRoom)
	inspections.Post("/:id/rooms/custom", c.RoomHandler.AddCustomRoom)
	inspections.Delete("/:id/rooms/:roomId", c.RoomHandler.RemoveRoom)

	// Photos
	inspections.Post("/:id/rooms/:roomId/photos", c.PhotoHandler.UploadPhoto)
	inspections.Get("/:id/rooms/:roomId/photos", c.PhotoHandler.GetPhotos)
	inspections.Post("/:id/rooms/:roomId/photos/:photoId/primary", c.PhotoHandler.SetPrimaryPhoto)
	inspections.Delete("/:id/rooms/:roomId/photos/:photoId", c.PhotoHandler.DeletePhoto)

	// Wizard flow
	inspections.Get("/:id/wizard", c.WizardHandler.GetState)
	inspections.Post("/:id/wizard/rooms/:roomId", c.WizardHandler.SaveRoom)
}

func (c *Config) Sharing() {
	share := c.App.Group("/api/inspections/:id/share", c.Middleware.AuthMiddleware(c.JWTService))

	share.Get("", c.InspectionHandler.GetShare)
	share.Post("", c.InspectionHandler.CreateShare)
	share.Delete("", c.InspectionHandler.RevokeShare)
	share.Post("/email", c.InspectionHandler.EmailShareLink)
}

func (c *Config) Analysis() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/api/analyze-inspection-photo", auth, c.AnalysisHandler.AnalyzeInspectionPhoto)
	c.App.Get("/api/analyze-inspection-photo", auth, c.AnalysisHandler.AnalyzeInspectionPhotoUsage)
	c.App.Post("/api/analyze-room-photo", auth, c.AnalysisHandler.AnalyzeRoomPhoto)

	c.App.Post("/api/v1/rooms/:roomId/analysis/review", auth, c.AnalysisHandler.ReviewAnalysis)
}

func (c *Config) Billing() {
	billing := c.App.Group("/api/v1/billing")

	billing.Get("/packages", c.BillingHandler.GetCreditPackages)
	billing.Post("/credits", c.Middleware.AuthMiddleware(c.JWTService), c.BillingHandler.BuyCredits)
}

func (c *Config) Geocode() {
	c.App.Get("/api/v1/geocode/autocomplete", c.Middleware.AuthMiddleware(c.JWTService), c.GeocodeHandler.Autocomplete)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.BillingHandler.MidtransWebhookHandler)
	c.App.Get("/shared/inspection/:token", c.InspectionHandler.GetSharedReport)
}
