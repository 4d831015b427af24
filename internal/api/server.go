package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/myniu/internal/extract"
	"github.com/limbo/myniu/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	trainingsService service.TrainingsServiceI
	dailyLogsService service.DailyLogsServiceI
	dashboardService service.DashboardServiceI
	jwtService       JWTServiceI
	extractor        extract.Extractor
}

type ServicesList struct {
	UserService      service.UserServiceI
	TrainingsService service.TrainingsServiceI
	DailyLogsService service.DailyLogsServiceI
	DashboardService service.DashboardServiceI
	JwtService       JWTServiceI
	Extractor        extract.Extractor
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		trainingsService: servicesOptions.TrainingsService,
		dailyLogsService: servicesOptions.DailyLogsService,
		dashboardService: servicesOptions.DashboardService,
		jwtService:       servicesOptions.JwtService,
		extractor:        servicesOptions.Extractor,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)
			r.Get("/dashboard", s.GetDashboard)
			r.Get("/trainings", s.ListTrainings)
			r.Post("/trainings", s.CreateTraining)
			r.Delete("/trainings/{id}", s.DeleteTraining)
			r.Get("/daily", s.ListDailyLogs)
			r.Get("/daily/{date}", s.GetDayDetail)
			r.Put("/daily/{date}", s.UpsertDailyLog)
			r.Post("/daily/water", s.AddWater)
			r.Post("/daily/kefir", s.AddKefir)
			r.Post("/daily/reading", s.LogReading)
			r.Post("/daily/nophone", s.LogNoPhone)
			r.Get("/calendar/{year}/{month}", s.GetCalendarMonth)
			r.Get("/charts", s.GetCharts)
			r.Post("/extract", s.ExtractTraining)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
