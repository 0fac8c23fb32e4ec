package config

import (
	"PropInspect-Backend/internal/api/handlers"
	"PropInspect-Backend/internal/api/routes"
	"PropInspect-Backend/internal/middleware"
	"PropInspect-Backend/internal/utils"
	"PropInspect-Backend/internal/utils/storage"
	"PropInspect-Backend/pkg/analysis"
	"PropInspect-Backend/pkg/billing"
	"PropInspect-Backend/pkg/geocode"
	"PropInspect-Backend/pkg/inspection"
	"PropInspect-Backend/pkg/jwt"
	"PropInspect-Backend/pkg/photo"
	"PropInspect-Backend/pkg/room"
	"PropInspect-Backend/pkg/user"
	"PropInspect-Backend/pkg/wizard"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         12 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	inspectionRepository := inspection.NewInspectionRepository(db)
	roomRepository := room.NewRoomRepository(db)
	photoRepository := photo.NewPhotoRepository(db)
	billingRepository := billing.NewBillingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inspectionService := inspection.NewInspectionService(inspectionRepository, s3)
	roomService := room.NewRoomService(roomRepository, inspectionRepository)
	photoService := photo.NewPhotoService(photoRepository, roomRepository, inspectionRepository, s3)
	analysisService := analysis.NewAnalysisService(roomRepository, photoRepository, inspectionRepository, userRepository)
	wizardService := wizard.NewWizardService(roomRepository, inspectionRepository)
	billingService := billing.NewBillingService(billingRepository, userRepository)
	geocodeService := geocode.NewGeocodeService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inspectionHandler := handlers.NewInspectionHandler(inspectionService, validator)
	roomHandler := handlers.NewRoomHandler(roomService, validator)
	photoHandler := handlers.NewPhotoHandler(photoService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	wizardHandler := handlers.NewWizardHandler(wizardService, validator)
	billingHandler := handlers.NewBillingHandler(billingService, validator)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		InspectionHandler: inspectionHandler,
		RoomHandler:       roomHandler,
		PhotoHandler:      photoHandler,
		AnalysisHandler:   analysisHandler,
		WizardHandler:     wizardHandler,
		BillingHandler:    billingHandler,
		GeocodeHandler:    geocodeHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
