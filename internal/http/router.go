package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/http/handlers"
	"github.com/geocoder89/userhub/internal/http/middlewares"
	"github.com/geocoder89/userhub/internal/observability"
)

// NewRouter wires middlewares and routes around an already-composed users
// service; all construction happens at startup in cmd/api.
func NewRouter(
	log *slog.Logger,
	svc handlers.UsersService,
	ping func() error,
	prom *observability.Prom,
	openapiDoc []byte,
	cfg config.Config,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(otelgin.Middleware("userhub"))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))

	// health
	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if prom != nil {
		r.GET("/metrics", gin.WrapH(prom.Handler()))
	}

	// API docs
	sw := handlers.NewSwaggerHandler(openapiDoc)
	r.GET("/swagger", sw.Doc)
	r.GET("/swagger/ui", sw.UI)

	// users routes
	usersHandler := handlers.NewUsersHandler(svc, cfg.Validation)

	rl := middlewares.NewRateLimiter(60, time.Minute)
	limited := rl.RateLimiterMiddleware(middlewares.KeyByIP)

	r.GET("/users", usersHandler.ListUsers)
	r.GET("/users/:id", usersHandler.GetUser)
	r.POST("/users/signup", limited, usersHandler.SignUp)
	r.PATCH("/users/:id", limited, usersHandler.UpdateUser)
	r.DELETE("/users/:id", limited, usersHandler.DeleteUser)

	return r
}
