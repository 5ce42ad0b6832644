package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lifehub/lifehub/pkg/entity"
)

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Looks up user by id. Used by the session middleware
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ExpensesServiceI interface {
	List(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Expense, error)
	Create(ctx context.Context, uid uuid.UUID, req *CreateExpenseRequest) (*entity.Expense, error)
	Delete(ctx context.Context, expenseID, uid uuid.UUID) error
}

type HabitsServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	Create(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	Delete(ctx context.Context, habitID, uid uuid.UUID) error
}

type HabitLogsServiceI interface {
	List(ctx context.Context, habitID, uid uuid.UUID) ([]*entity.HabitLog, error)
	Create(ctx context.Context, habitID, uid uuid.UUID, req *CreateHabitLogRequest) (*entity.HabitLog, error)
	Delete(ctx context.Context, habitID, logID, uid uuid.UUID) error
}

type TasksServiceI interface {
	List(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Task, error)
	Create(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	SetCompleted(ctx context.Context, taskID, uid uuid.UUID, completed bool) (*entity.Task, error)
	Delete(ctx context.Context, taskID, uid uuid.UUID) error
}

type DashboardServiceI interface {
	Stats(ctx context.Context, uid uuid.UUID) (*entity.DashboardStats, error)
}
