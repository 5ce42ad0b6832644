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
	habitLogID   = uuid.New()
	testHabitLog = entity.HabitLog{
		ID:        habitLogID,
		HabitID:   habitID,
		Date:      time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local),
		Completed: true,
		CreatedAt: time.Now(),
	}
)

type habitLogsRepoMock struct {
	state mockState
}

func (lrmock *habitLogsRepoMock) Create(ctx context.Context, log *entity.HabitLog) error {
	switch lrmock.state {
	case stateNotFound:
		return errorvalues.ErrHabitNotFound
	case stateDBError:
		return errors.New("db error")
	default:
		log.ID = habitLogID
		log.CreatedAt = testHabitLog.CreatedAt
		return nil
	}
}

func (lrmock *habitLogsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitLog, error) {
	switch lrmock.state {
	case stateNotFound:
		return nil, errorvalues.ErrHabitLogNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateForeignLog:
		l := testHabitLog
		l.HabitID = uuid.New()
		return &l, nil
	default:
		l := testHabitLog
		return &l, nil
	}
}

func (lrmock *habitLogsRepoMock) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]*entity.HabitLog, error) {
	switch lrmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		l := testHabitLog
		return []*entity.HabitLog{&l}, nil
	}
}

func (lrmock *habitLogsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch lrmock.state {
	case stateNotFound:
		return errorvalues.ErrHabitLogNotFound
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func TestListHabitLogs(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	logsMock := &habitLogsRepoMock{state: stateSuccess}
	serv := service.NewHabitLogsService(habitsMock, logsMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		logs, err := serv.List(ctx, habitID, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(logs))
		assert.Equal(t, testHabitLog, *logs[0])
	})
	t.Run("habit not found", func(t *testing.T) {
		habitsMock.state = stateNotFound
		_, err := serv.List(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("foreign habit", func(t *testing.T) {
		habitsMock.state = stateWrongOwner
		_, err := serv.List(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("db error", func(t *testing.T) {
		habitsMock.state = stateSuccess
		logsMock.state = stateDBError
		_, err := serv.List(ctx, habitID, userID)
		assert.Error(t, err)
	})
}

func TestCreateHabitLogFromRequest(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	logsMock := &habitLogsRepoMock{state: stateSuccess}
	serv := service.NewHabitLogsService(habitsMock, logsMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		log, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{
			Date: "2026-08-15",
		})
		assert.NoError(t, err)
		assert.Equal(t, testHabitLog, *log)
	})
	t.Run("timestamp normalized to midnight", func(t *testing.T) {
		log, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{
			Date: "2026-08-15T17:42:13+03:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, log.Date.Hour())
		assert.Equal(t, 0, log.Date.Minute())
		assert.Equal(t, 0, log.Date.Second())
		assert.True(t, log.Completed)
	})
	t.Run("missing date", func(t *testing.T) {
		_, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{})
		assertValidationMessage(t, err, "Valid date is required")
	})
	t.Run("unparseable date", func(t *testing.T) {
		_, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{
			Date: "yesterday",
		})
		assertValidationMessage(t, err, "Valid date is required")
	})
	t.Run("habit not found", func(t *testing.T) {
		habitsMock.state = stateNotFound
		_, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{
			Date: "2026-08-15",
		})
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("foreign habit", func(t *testing.T) {
		habitsMock.state = stateWrongOwner
		_, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{
			Date: "2026-08-15",
		})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("db error", func(t *testing.T) {
		habitsMock.state = stateSuccess
		logsMock.state = stateDBError
		_, err := serv.Create(ctx, habitID, userID, &service.CreateHabitLogRequest{
			Date: "2026-08-15",
		})
		assert.Error(t, err)
	})
}

func TestDeleteHabitLogOwnership(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	logsMock := &habitLogsRepoMock{state: stateSuccess}
	serv := service.NewHabitLogsService(habitsMock, logsMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := serv.Delete(ctx, habitID, habitLogID, userID)
		assert.NoError(t, err)
	})
	t.Run("foreign habit", func(t *testing.T) {
		habitsMock.state = stateWrongOwner
		err := serv.Delete(ctx, habitID, habitLogID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("log under another habit", func(t *testing.T) {
		habitsMock.state = stateSuccess
		logsMock.state = stateForeignLog
		err := serv.Delete(ctx, habitID, habitLogID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitLogNotFound)
	})
	t.Run("log not found", func(t *testing.T) {
		logsMock.state = stateNotFound
		err := serv.Delete(ctx, habitID, habitLogID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitLogNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		logsMock.state = stateDBError
		err := serv.Delete(ctx, habitID, habitLogID, userID)
		assert.Error(t, err)
	})
}
