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

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepo(cfg DBConfig) *HabitLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitLogsRepository{
		conn: pool,
	}
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	return &HabitLogsRepository{
		conn: conn,
	}
}

func (lr *HabitLogsRepository) Create(ctx context.Context, habitLog *entity.HabitLog) error {
	row := lr.conn.QueryRow(ctx,
		`INSERT INTO habit_logs (habit_id, date, completed) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		habitLog.HabitID,
		habitLog.Date,
		habitLog.Completed,
	)
	if err := row.Scan(&habitLog.ID, &habitLog.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating habit log db error: " + err.Error())
	}
	return nil
}

func (lr *HabitLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitLog, error) {
	var habitLog entity.HabitLog
	habitLog.ID = id
	row := lr.conn.QueryRow(ctx, `SELECT habit_id, date, completed, created_at FROM habit_logs WHERE id = $1;`, id)
	if err := row.Scan(&habitLog.HabitID, &habitLog.Date, &habitLog.Completed, &habitLog.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitLogNotFound
		}
		return nil, errors.New("getting habit log by id error: " + err.Error())
	}
	return &habitLog, nil
}

func (lr *HabitLogsRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]*entity.HabitLog, error) {
	logs := make([]*entity.HabitLog, 0)
	rows, err := lr.conn.Query(ctx, `SELECT id, habit_id, date, completed, created_at
		FROM habit_logs WHERE habit_id = $1 ORDER BY date DESC;`, habitID)
	if err != nil {
		return nil, errors.New("getting logs by habit id error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		l := entity.HabitLog{}
		err = rows.Scan(&l.ID, &l.HabitID, &l.Date, &l.Completed, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling habit log error: " + err.Error())
		}
		logs = append(logs, &l)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return logs, nil
}

func (lr *HabitLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM habit_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit log: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitLogNotFound
	}
	return nil
}
