package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/database"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/config"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/handlers"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/logger"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/middleware"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/paystack"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/routes"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/storage"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstSuperadmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first superadmin", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	provider := email.NewGomailProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUser,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	mailer := email.NewMailer(provider, cfg.FrontendURL, cfg.Email.AdminEmail, cfg.Email.ArconEmail)

	gateway := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.CallbackURL)

	serviceContainer := services.NewServiceContainer(gormDB, gateway, mailer, storageInstance)

	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstSuperadmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstSuperadminEmail
	adminPassword := cfg.FirstSuperadminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_SUPERADMIN_EMAIL or FIRST_SUPERADMIN_PASSWORD is not set. Skipping superadmin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.User
	result := tx.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Superadmin already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for superadmin: %w", result.Error)
	}

	logger.Warn("No superadmin found. Creating first superadmin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash superadmin password: %w", err)
	}

	superadmin := &models.User{
		Email:           adminEmail,
		PasswordHash:    string(hashedPassword),
		Role:            models.UserRoleSuperadmin,
		IsEmailVerified: true,
		IsActive:        true,
	}
	if err := tx.Create(superadmin).Error; err != nil {
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	logger.Info("✅ Successfully created first superadmin", "email", adminEmail)
	return tx.Commit().Error
}
