package server

import (
	"net/http"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/middleware"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/feed"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server wires the scoreboard routes onto a gin engine.
type Server struct {
	engine *gin.Engine
}

// Options carries the optional pieces of the server.
type Options struct {
	// AdminSecret protects GET /data when non-empty.
	AdminSecret string
	// Feed serves GET /ws when non-nil.
	Feed *feed.Handler
}

func NewServer(statsController *controller.StatsController, opts Options) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS())

	s := &Server{engine: engine}
	s.registerRoutes(statsController, opts)
	return s
}

func (s *Server) registerRoutes(sc *controller.StatsController, opts Options) {
	s.engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	data := s.engine.Group("/data")
	{
		data.GET("", middleware.AdminAuth(opts.AdminSecret), sc.List)
		data.GET("/:player", sc.Get)
		data.POST("/:player", sc.Update)
	}

	if opts.Feed != nil {
		s.engine.GET("/ws", opts.Feed.ServeWS)
	}
}

// Engine returns the bare gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the engine wrapped with OpenTelemetry instrumentation.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.engine, "scoreboard",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
