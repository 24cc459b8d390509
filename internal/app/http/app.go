package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "evermore_gallery/internal/middleware"
	httprouters "evermore_gallery/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	tokens  appmw.TokenValidator
	host    string
	port    string
}

func New(log *slog.Logger, sessionSecret, host, port string, routers *httprouters.Routers, tokens appmw.TokenValidator) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		tokens:  tokens,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api/v1")
	{
		gallery := api.Group("/gallery")
		{
			gallery.POST("/authenticate", s.routers.Authenticate)
			gallery.GET("/session", s.routers.GetSession)
			gallery.POST("/logout", s.routers.Logout)
			gallery.DELETE("/session", s.routers.Logout)

			gallery.POST("/favorites", s.routers.AddFavorite)
			gallery.GET("/favorites", s.routers.ListFavorites)
			gallery.DELETE("/favorites/:image_id", s.routers.RemoveFavorite)

			gallery.POST("/downloads", s.routers.RecordDownload)

			gallery.POST("/analytics/start", s.routers.StartAnalytics)
			gallery.POST("/analytics/:session_id/close", s.routers.CloseAnalytics)
		}

		adminGroup := api.Group("/admin")
		{
			adminGroup.POST("/login", s.routers.AdminLogin)

			galleries := adminGroup.Group("/galleries", appmw.AdminAuth(s.tokens))
			{
				galleries.POST("", s.routers.CreateGallery)
				galleries.GET("", s.routers.ListGalleries)
				galleries.GET("/:id", s.routers.GetGallery)
				galleries.PUT("/:id", s.routers.UpdateGallery)
				galleries.PATCH("/:id/status", s.routers.UpdateGalleryStatus)
				galleries.DELETE("/:id", s.routers.DeleteGallery)
				galleries.GET("/:id/stats", s.routers.GetGalleryStats)
				galleries.POST("/:id/extend", s.routers.ExtendExpiration)
				galleries.GET("/:id/analytics", s.routers.ListGalleryAnalytics)
			}
		}
	}
}
