package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/askohli/talkio-server/internal/auth"
	"github.com/askohli/talkio-server/internal/config"
	"github.com/askohli/talkio-server/internal/core"
)

// NewServer builds the HTTP server: REST auth endpoints plus the
// realtime websocket entry point.
func NewServer(router *core.Router, authService *auth.Service, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), LoggerMiddleware(logger))

	engine.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})

	api := NewAPIHandlers(authService, logger)
	engine.POST("/api/register", api.Register)
	engine.POST("/api/login", api.Login)
	engine.POST("/api/guest", api.GuestLogin)

	protected := engine.Group("/api", AuthMiddleware(authService, logger))
	protected.GET("/me", api.Me)

	ws := NewWSHandler(router, cfg.MessageRateLimit, logger)
	engine.GET("/ws", gin.WrapH(ws))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
