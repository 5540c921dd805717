package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"infracore/internal/auth"
	"infracore/internal/config"
	"infracore/internal/db"
	"infracore/internal/handler"
	"infracore/internal/logx"
	"infracore/internal/model"
	"infracore/internal/notify"
	"infracore/internal/repository"
	"infracore/internal/router"
	"infracore/internal/service"
	"infracore/internal/storage"
)

func main() {
	cfg := config.Load()

	if err := logx.Setup(cfg.Env); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zap.L().Sync()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Attachment{},
		&model.ContactMessage{},
		&model.Quotation{},
		&model.NotificationSettings{},
		&model.Admin{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	store, err := storage.NewStore(storage.Config{
		Endpoint:   cfg.StorageEndpoint,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		Bucket:     cfg.StorageBucket,
		UseSSL:     cfg.StorageUseSSL,
		PublicBase: cfg.StoragePublicBase,
	})
	if err != nil {
		log.Fatalf("object storage init: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)
	leadRepo := repository.NewLeadRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	// Initialize delivery channels
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, "Asha Infracore")
	subscriptions := notify.NewMemorySubscriptionStore()
	pushSender := notify.NewWebPushSender(cfg.VAPIDSubject, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey)
	broadcaster := notify.NewBroadcaster(subscriptions, pushSender)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService, cfg.AdminAllowList)
	productService := service.NewProductService(productRepo, store)
	attachmentService := service.NewAttachmentService(attachmentRepo, store)
	dispatcher := service.NewNotificationDispatcher(settingsRepo, mailer, broadcaster, cfg.OwnerEmail, cfg.QuoteEmail)
	leadService := service.NewLeadService(leadRepo, dispatcher)
	notificationService := service.NewNotificationService(settingsRepo, subscriptions, broadcaster)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService, cfg.SecureCookies)
	productHandler := handler.NewProductHandler(productService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)
	leadHandler := handler.NewLeadHandler(leadService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		attachmentHandler,
		leadHandler,
		notificationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
