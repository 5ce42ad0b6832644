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

func TestCreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepoWithConn(mock)
	user := entity.User{
		Email:        "test@example.com",
		Name:         "Tester",
		PasswordHash: "$2a$10$hash",
	}
	uid := uuid.New()
	createdAt := time.Now()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email, user.Name, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uid, createdAt))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
		assert.Equal(t, uid, user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
	})
	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email, user.Name, user.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrEmailTaken)
	})
	t.Run("nil user", func(t *testing.T) {
		err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email, user.Name, user.PasswordHash).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepoWithConn(mock)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Tester",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
				AddRow(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt),
			)
		result, err := repo.FindByEmail(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestFindUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepoWithConn(mock)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Tester",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
				AddRow(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt),
			)
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
