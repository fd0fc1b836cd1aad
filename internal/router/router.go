package router

import (
	"github.com/anonto42/qa-forum/backend/internal/handlers"
	"github.com/anonto42/qa-forum/backend/internal/middleware"
	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/anonto42/qa-forum/backend/pkg/metrics"
	"github.com/anonto42/qa-forum/backend/validators"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware. m may be nil.
func SetupMiddleware(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.RequestID())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowMethods: []string{echo.GET, echo.HEAD, echo.OPTIONS},
	}))
	e.Use(middleware.RequestLogger(log))
	if m != nil {
		e.Use(middleware.Metrics(m))
	}
	log.Debug().Msg("global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies.
// The schema is owned by whoever provisions the database; nothing is migrated here.
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	e.Validator = validators.NewValidator()

	e.GET("/health", handlers.HealthCheck(db))

	repos := repositories.NewRepositories(db)
	api := e.Group("/api/v1")

	handlers.NewQuestionHandler(repos.Questions).RegisterQuestionRoutes(api)
	handlers.NewUserHandler(repos.Users).RegisterUserRoutes(api)
	handlers.NewReplyHandler(repos.Replies).RegisterReplyRoutes(api)
	handlers.NewFollowHandler(repos.Follows).RegisterFollowRoutes(api)
	handlers.NewLikeHandler(repos.Likes).RegisterLikeRoutes(api)
}
