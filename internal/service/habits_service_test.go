package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/internal/service"
	"github.com/lifehub/lifehub/pkg/entity"
	"github.com/stretchr/testify/assert"
)

var (
	habitID   = uuid.New()
	testDesc  = "test_description"
	testHabit = entity.Habit{
		ID:          habitID,
		UserID:      userID,
		Name:        "test_habit",
		Description: &testDesc,
		CreatedAt:   time.Now(),
	}
)

type habitsRepoMock struct {
	state mockState
}

func (hrmock *habitsRepoMock) Create(ctx context.Context, habit *entity.Habit) error {
	switch hrmock.state {
	case stateDBError:
		return errors.New("db error")
	default:
		habit.ID = habitID
		habit.CreatedAt = testHabit.CreatedAt
		return nil
	}
}

func (hrmock *habitsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	switch hrmock.state {
	case stateNotFound:
		return nil, errorvalues.ErrHabitNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		h := testHabit
		h.UserID = uuid.New()
		return &h, nil
	default:
		h := testHabit
		return &h, nil
	}
}

func (hrmock *habitsRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	switch hrmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		h := testHabit
		return []*entity.Habit{&h}, nil
	}
}

func (hrmock *habitsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch hrmock.state {
	case stateNotFound:
		return errorvalues.ErrHabitNotFound
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (hrmock *habitsRepoMock) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	switch hrmock.state {
	case stateDBError:
		return 0, errors.New("db error")
	default:
		return 1, nil
	}
}

func TestListHabits(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	hs := service.NewHabitsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		habits, err := hs.List(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(habits))
		assert.Equal(t, testHabit, *habits[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := hs.List(ctx, userID)
		assert.Error(t, err)
	})
}

func TestCreateHabitFromRequest(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	hs := service.NewHabitsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		habit, err := hs.Create(ctx, userID, &service.CreateHabitRequest{
			Name:        testHabit.Name,
			Description: testDesc,
		})
		assert.NoError(t, err)
		assert.Equal(t, testHabit.Name, habit.Name)
		assert.Equal(t, testDesc, *habit.Description)
	})
	t.Run("trims name and description", func(t *testing.T) {
		habit, err := hs.Create(ctx, userID, &service.CreateHabitRequest{
			Name:        "  test_habit  ",
			Description: "  test_description  ",
		})
		assert.NoError(t, err)
		assert.Equal(t, "test_habit", habit.Name)
		assert.Equal(t, "test_description", *habit.Description)
	})
	t.Run("blank description becomes nil", func(t *testing.T) {
		habit, err := hs.Create(ctx, userID, &service.CreateHabitRequest{
			Name:        testHabit.Name,
			Description: "   ",
		})
		assert.NoError(t, err)
		assert.Nil(t, habit.Description)
	})
	t.Run("blank name", func(t *testing.T) {
		_, err := hs.Create(ctx, userID, &service.CreateHabitRequest{
			Name: "   ",
		})
		assertValidationMessage(t, err, "Name is required")
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := hs.Create(ctx, userID, &service.CreateHabitRequest{
			Name: testHabit.Name,
		})
		assert.Error(t, err)
	})
}

func TestDeleteHabitOwnership(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	hs := service.NewHabitsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := hs.Delete(ctx, habitID, userID)
		assert.NoError(t, err)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		err := hs.Delete(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateNotFound
		err := hs.Delete(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		err := hs.Delete(ctx, habitID, userID)
		assert.Error(t, err)
	})
}
