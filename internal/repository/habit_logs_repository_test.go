package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/internal/repository"
	"github.com/lifehub/lifehub/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateHabitLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	habitLog := entity.HabitLog{
		HabitID:   uuid.New(),
		Date:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
		Completed: true,
	}
	lid := uuid.New()
	createdAt := time.Now()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO habit_logs (habit_id, date, completed) VALUES ($1, $2, $3) RETURNING id, created_at;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habitLog.HabitID, habitLog.Date, habitLog.Completed).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(lid, createdAt))
		err := repo.Create(ctx, &habitLog)
		assert.NoError(t, err)
		assert.Equal(t, lid, habitLog.ID)
		assert.Equal(t, createdAt, habitLog.CreatedAt)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habitLog.HabitID, habitLog.Date, habitLog.Completed).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Create(ctx, &habitLog)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habitLog.HabitID, habitLog.Date, habitLog.Completed).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &habitLog)
		assert.Error(t, err)
	})
}

func TestGetHabitLogByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	habitLog := entity.HabitLog{
		ID:        uuid.New(),
		HabitID:   uuid.New(),
		Date:      time.Now(),
		Completed: true,
		CreatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT habit_id, date, completed, created_at FROM habit_logs WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habitLog.ID).
			WillReturnRows(pgxmock.NewRows([]string{"habit_id", "date", "completed", "created_at"}).
				AddRow(habitLog.HabitID, habitLog.Date, habitLog.Completed, habitLog.CreatedAt),
			)
		result, err := repo.GetByID(ctx, habitLog.ID)
		assert.NoError(t, err)
		assert.Equal(t, habitLog, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habitLog.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habitLog.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitLogNotFound)
	})
}

func TestGetHabitLogsByHabitID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	hid := uuid.New()
	query := regexp.QuoteMeta(`SELECT id, habit_id, date, completed, created_at
		FROM habit_logs WHERE habit_id = $1 ORDER BY date DESC;`)
	ctx := context.Background()
	now := time.Now()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "habit_id", "date", "completed", "created_at"})
		for i := range 3 {
			rows.AddRow(uuid.New(), hid, now.AddDate(0, 0, -i), true, now)
		}
		mock.ExpectQuery(query).
			WithArgs(hid).
			WillReturnRows(rows)
		result, err := repo.GetByHabitID(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(result))
	})
	t.Run("empty list", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"id", "habit_id", "date", "completed", "created_at"}))
		result, err := repo.GetByHabitID(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByHabitID(ctx, hid)
		assert.Error(t, err)
	})
}

func TestDeleteHabitLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	lid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM habit_logs WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(lid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, lid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(lid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, lid)
		assert.ErrorIs(t, err, errorvalues.ErrHabitLogNotFound)
	})
}
