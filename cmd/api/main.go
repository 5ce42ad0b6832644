// @title LifeHub API
// @description Personal life-tracking API: expenses, habits, tasks, dashboard
// @BasePath /api
// @schemes http
package main

import (
	"log"

	"github.com/lifehub/lifehub/internal/api"
	"github.com/lifehub/lifehub/internal/repository"
	"github.com/lifehub/lifehub/internal/service"
	"github.com/lifehub/lifehub/pkg/cleanup"
	"github.com/lifehub/lifehub/pkg/config"
	tokenservice "github.com/lifehub/lifehub/pkg/token_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	expensesRepo := repository.NewExpensesRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	habitLogsRepo := repository.NewHabitLogsRepo(&dbCfg)
	tasksRepo := repository.NewTasksRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo),
		ExpensesService:  service.NewExpensesService(expensesRepo),
		HabitsService:    service.NewHabitsService(habitsRepo),
		HabitLogsService: service.NewHabitLogsService(habitsRepo, habitLogsRepo),
		TasksService:     service.NewTasksService(tasksRepo),
		DashboardService: service.NewDashboardService(expensesRepo, habitsRepo, tasksRepo),
		TokenService:     tokenservice.New(cfg.GetString("JWT_SECRET")),
		SecureCookies:    cfg.GetBool("COOKIE_SECURE"),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
