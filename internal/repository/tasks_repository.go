package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/pkg/cleanup"
	"github.com/lifehub/lifehub/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for tasksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TasksRepository{
		conn: pool,
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, priority, completed) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		task.UserID,
		task.Title,
		task.Priority,
		task.Completed,
	)
	if err := row.Scan(&task.ID, &task.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating task db error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT user_id, title, priority, completed, created_at FROM tasks WHERE id = $1;`, id)
	if err := row.Scan(&task.UserID, &task.Title, &task.Priority, &task.Completed, &task.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, title, priority, completed, created_at
		FROM tasks WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting tasks by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Priority, &t.Completed, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	row := tr.conn.QueryRow(ctx,
		`UPDATE tasks SET completed = $1 WHERE id = $2 RETURNING user_id, title, priority, completed, created_at;`,
		completed, id,
	)
	if err := row.Scan(&task.UserID, &task.Title, &task.Priority, &task.Completed, &task.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("error updating task: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) CountByUserIDAndCompleted(ctx context.Context, uid uuid.UUID, completed bool) (int, error) {
	row := tr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND completed = $2;`, uid, completed)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting tasks: " + err.Error())
	}
	return count, nil
}
