// Package httpapi exposes the public HTTP surface of the auth server:
// registration, login, the authenticated profile route, and a liveness
// endpoint. Responses use a uniform JSON envelope.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ndmitriev/authcore/internal/logging"
	"github.com/ndmitriev/authcore/internal/server/config"
	"github.com/ndmitriev/authcore/internal/server/users"
)

// shutdownTimeout bounds how long in-flight requests may run after the stop
// signal before the listener is torn down.
const shutdownTimeout = 5 * time.Second

// UserService is the slice of the users service consumed by the handlers.
type UserService interface {
	Register(ctx context.Context, name, email, password, phoneNum string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.LoginResult, error)
	GetUser(ctx context.Context, id string) (*users.User, error)
}

type Server struct {
	address       string
	logger        logging.Logger
	users         UserService
	jwtSecret     []byte
	tokenValidity time.Duration
	corsOrigins   []string
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService) *Server {
	return &Server{
		address:       cfg.EndpointAddrHTTP,
		logger:        l.With("module", "httpapi"),
		users:         us,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		corsOrigins:   cfg.CORSAllowedOrigins,
	}
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", s.handleLiveness)

	api := r.Group("/api/v1/users")
	{
		api.POST("/register", s.handleRegister)
		api.POST("/login", s.handleLogin)
		api.GET("/me", s.authMiddleware(), s.handleMe)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Shutdown drains in-flight requests up to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
