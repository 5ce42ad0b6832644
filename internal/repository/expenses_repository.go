package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/pkg/cleanup"
	"github.com/lifehub/lifehub/pkg/entity"
)

type ExpensesRepository struct {
	conn PgConnection
}

func NewExpensesRepo(cfg DBConfig) *ExpensesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for expensesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for expensesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExpensesRepository{
		conn: pool,
	}
}

func NewExpensesRepoWithConn(conn PgConnection) *ExpensesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for expensesRepo: " + err.Error())
	}
	return &ExpensesRepository{
		conn: conn,
	}
}

func (er *ExpensesRepository) Create(ctx context.Context, expense *entity.Expense) error {
	row := er.conn.QueryRow(ctx,
		`INSERT INTO expenses (user_id, amount, category, date, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.Date,
		expense.Notes,
	)
	if err := row.Scan(&expense.ID, &expense.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating expense db error: " + err.Error())
	}
	return nil
}

func (er *ExpensesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	expense.ID = id
	row := er.conn.QueryRow(ctx,
		`SELECT user_id, amount, category, date, notes, created_at FROM expenses WHERE id = $1;`, id)
	if err := row.Scan(&expense.UserID, &expense.Amount, &expense.Category, &expense.Date, &expense.Notes, &expense.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExpenseNotFound
		}
		return nil, errors.New("getting expense by id error: " + err.Error())
	}
	return &expense, nil
}

func (er *ExpensesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Expense, error) {
	expenses := make([]*entity.Expense, 0)
	rows, err := er.conn.Query(ctx,
		`SELECT id, user_id, amount, category, date, notes, created_at
		FROM expenses WHERE user_id = $1 ORDER BY date DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting expenses by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Expense{}
		err = rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Date, &e.Notes, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling expense error: " + err.Error())
		}
		expenses = append(expenses, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return expenses, nil
}

func (er *ExpensesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting expense: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExpenseNotFound
	}
	return nil
}

func (er *ExpensesRepository) SumAmountByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (float64, error) {
	row := er.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1 AND date >= $2 AND date < $3;`,
		uid, from, to,
	)
	var sum float64
	if err := row.Scan(&sum); err != nil {
		return 0, errors.New("summing expenses error: " + err.Error())
	}
	return sum, nil
}
