package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lifehub/lifehub/internal/repository"
	"github.com/lifehub/lifehub/pkg/entity"
)

// Streak counting isn't implemented yet, the dashboard reports a constant.
// TODO: compute the streak from consecutive habit log days.
const habitStreakStub = 0

type DashboardService struct {
	expensesRepo repository.ExpensesRepositoryI
	habitsRepo   repository.HabitsRepositoryI
	tasksRepo    repository.TasksRepositoryI
}

func NewDashboardService(
	expensesRepo repository.ExpensesRepositoryI,
	habitsRepo repository.HabitsRepositoryI,
	tasksRepo repository.TasksRepositoryI,
) *DashboardService {
	if expensesRepo == nil || habitsRepo == nil || tasksRepo == nil {
		log.Fatal("on dashboard service provided nil repos")
	}
	return &DashboardService{
		expensesRepo: expensesRepo,
		habitsRepo:   habitsRepo,
		tasksRepo:    tasksRepo,
	}
}

// Stats aggregates the user's current-month expense total, habit count and
// task counts. The month runs from its first day to its last, server-local.
func (ds *DashboardService) Stats(ctx context.Context, uid uuid.UUID) (*entity.DashboardStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	expensesSum, err := ds.expensesRepo.SumAmountByUserAndDateRange(ctx, uid, monthStart, nextMonthStart)
	if err != nil {
		return nil, errors.New("expenses repository error: " + err.Error())
	}
	habitsCount, err := ds.habitsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	pending, err := ds.tasksRepo.CountByUserIDAndCompleted(ctx, uid, false)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	completed, err := ds.tasksRepo.CountByUserIDAndCompleted(ctx, uid, true)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return &entity.DashboardStats{
		ExpensesThisMonth: expensesSum,
		ActiveHabits:      habitsCount,
		HabitStreak:       habitStreakStub,
		PendingTasks:      pending,
		CompletedTasks:    completed,
	}, nil
}
