package pkg

import (
	"context"
	"net/http"

	"CampusPortal/internal/admin"
	"CampusPortal/internal/announcement"
	"CampusPortal/internal/auth"
	"CampusPortal/internal/bootstrap"
	"CampusPortal/internal/config"
	"CampusPortal/internal/event"
	"CampusPortal/internal/inquiry"
	mw "CampusPortal/pkg/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// PortalModules wires the whole portal: config, Mongo, every feature's
// repository/service/handler triple, the auth pipeline, and the routes.
var PortalModules = fx.Module("portal",
	fx.Provide(config.NewAppConfig),
	fx.Provide(config.NewLogger),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(auth.NewUserRepository),
	fx.Provide(auth.NewTokenService),
	fx.Provide(auth.NewAuthService),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(auth.NewRecoverySweeper),
	fx.Provide(event.NewEventRepository),
	fx.Provide(event.NewEventService),
	fx.Provide(event.NewEventHandler),
	fx.Provide(announcement.NewAnnouncementRepository),
	fx.Provide(announcement.NewAnnouncementService),
	fx.Provide(announcement.NewAnnouncementHandler),
	fx.Provide(inquiry.NewInquiryRepository),
	fx.Provide(inquiry.NewInquiryService),
	fx.Provide(inquiry.NewInquiryHandler),
	fx.Provide(admin.NewAdminService),
	fx.Provide(admin.NewAdminHandler),
	fx.Provide(mw.NewAuthMiddleware),
	fx.Provide(mw.NewEnforcer),
	fx.Provide(mw.NewRBACMiddleware),
	fx.Provide(NewEchoServer),
	fx.Invoke(bootstrap.SeedUsers),
	fx.Invoke(func(lc fx.Lifecycle, sweeper *auth.RecoverySweeper) {
		sweeper.StartSweeper(lc)
	}),
	fx.Invoke(RegisterRoutes),
)

func NewEchoServer(lc fx.Lifecycle, cfg *config.AppConfig, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.AllowOrigin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	port := ":" + cfg.Port
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("server starting", zap.String("port", cfg.Port))
			go func() {
				if err := e.Start(port); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	cfg *config.AppConfig,
	authHandler *auth.AuthHandler,
	eventHandler *event.EventHandler,
	announcementHandler *announcement.AnnouncementHandler,
	inquiryHandler *inquiry.InquiryHandler,
	adminHandler *admin.AdminHandler,
	authMW *mw.AuthMiddleware,
	rbac *mw.RBACMiddleware,
) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "University Event System API is running...")
	})
	e.Static("/uploads", cfg.UploadDir)

	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/forgot-password", authHandler.ForgotPassword)
	users.POST("/reset-password", authHandler.ResetPassword)
	users.GET("/me", authHandler.Me, authMW.Authenticate)

	events := e.Group("/api/events")
	events.GET("", eventHandler.List)
	events.POST("", eventHandler.Create, authMW.Authenticate, rbac.Authorize)
	events.PUT("/:id", eventHandler.Update, authMW.Authenticate, rbac.Authorize)
	events.DELETE("/:id", eventHandler.Delete, authMW.Authenticate, rbac.Authorize)
	events.POST("/register/:id", eventHandler.Register, authMW.Authenticate)
	events.POST("/upload", eventHandler.Upload, authMW.Authenticate, rbac.Authorize)

	announcements := e.Group("/api/announcements", authMW.Authenticate)
	announcements.GET("", announcementHandler.List)
	announcements.POST("", announcementHandler.Create, rbac.Authorize)
	announcements.PUT("/:id", announcementHandler.Update, rbac.Authorize)
	announcements.DELETE("/:id", announcementHandler.Delete, rbac.Authorize)

	inquiries := e.Group("/api/inquiries", authMW.Authenticate)
	inquiries.GET("", inquiryHandler.List, rbac.Authorize)
	inquiries.POST("", inquiryHandler.Create)
	inquiries.PUT("/:id", inquiryHandler.Resolve, rbac.Authorize)
	inquiries.DELETE("/:id", inquiryHandler.Delete, rbac.Authorize)

	adminGroup := e.Group("/api/admin", authMW.Authenticate, rbac.Authorize)
	adminGroup.GET("/stats", adminHandler.Stats)
	adminGroup.GET("/students", adminHandler.Students)
}
