package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lifehub/lifehub/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	expensesService  service.ExpensesServiceI
	habitsService    service.HabitsServiceI
	habitLogsService service.HabitLogsServiceI
	tasksService     service.TasksServiceI
	dashboardService service.DashboardServiceI
	tokenService     TokenServiceI
	secureCookies    bool
}

type ServicesList struct {
	UserService      service.UserServiceI
	ExpensesService  service.ExpensesServiceI
	HabitsService    service.HabitsServiceI
	HabitLogsService service.HabitLogsServiceI
	TasksService     service.TasksServiceI
	DashboardService service.DashboardServiceI
	TokenService     TokenServiceI
	SecureCookies    bool
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		expensesService:  servicesOptions.ExpensesService,
		habitsService:    servicesOptions.HabitsService,
		habitLogsService: servicesOptions.HabitLogsService,
		tasksService:     servicesOptions.TasksService,
		dashboardService: servicesOptions.DashboardService,
		tokenService:     servicesOptions.TokenService,
		secureCookies:    servicesOptions.SecureCookies,
	}
}

// Routes mounts the middleware chain and every API route on the mux.
func (s *Server) Routes() http.Handler {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.SessionMiddleware)
	s.mx.Use(s.LoggerExtensionMiddleware)
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/logout", s.Logout)

		r.Get("/expenses", s.GetExpenses)
		r.Post("/expenses", s.CreateExpense)
		r.Delete("/expenses/{id}", s.DeleteExpense)

		r.Get("/habits", s.GetHabits)
		r.Post("/habits", s.CreateHabit)
		r.Get("/habits/today", s.GetHabitsToday)
		r.Delete("/habits/{id}", s.DeleteHabit)
		r.Get("/habits/{id}/logs", s.GetHabitLogs)
		r.Post("/habits/{id}/logs", s.CreateHabitLog)
		r.Delete("/habits/{id}/logs/{logId}", s.DeleteHabitLog)

		r.Get("/tasks", s.GetTasks)
		r.Post("/tasks", s.CreateTask)
		r.Patch("/tasks/{id}", s.UpdateTask)
		r.Delete("/tasks/{id}", s.DeleteTask)

		r.Get("/dashboard/stats", s.GetDashboardStats)
	})
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Routes())
}
