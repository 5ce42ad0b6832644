package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lifehub/lifehub/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, filling in generated id and created_at
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for session middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ExpensesRepositoryI interface {
	// Creates new expense, filling in generated id and created_at
	Create(ctx context.Context, expense *entity.Expense) error
	// Searches expense with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	// Lists expenses owned by user with uid, newest date first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Expense, error)
	// Deletes expense with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Sums amounts of user's expenses dated in [from, to)
	SumAmountByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (float64, error)
}

type HabitsRepositoryI interface {
	// Creates new habit, filling in generated id and created_at
	Create(ctx context.Context, habit *entity.Habit) error
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Deletes habit with id. Its logs go with it
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns count of user's habits
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type HabitLogsRepositoryI interface {
	// Creates new log, filling in generated id and created_at
	Create(ctx context.Context, log *entity.HabitLog) error
	// Searches log with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitLog, error)
	// Lists logs of habit with habitID, newest date first
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]*entity.HabitLog, error)
	// Deletes log with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type TasksRepositoryI interface {
	// Creates new task, filling in generated id and created_at
	Create(ctx context.Context, task *entity.Task) error
	// Searches task with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists tasks owned by user with uid, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Task, error)
	// Sets completed flag on task with id, returns the updated row
	UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*entity.Task, error)
	// Deletes task with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Counts user's tasks with the given completed flag
	CountByUserIDAndCompleted(ctx context.Context, uid uuid.UUID, completed bool) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
