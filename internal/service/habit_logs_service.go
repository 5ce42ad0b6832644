package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/internal/repository"
	"github.com/lifehub/lifehub/pkg/entity"
)

type CreateHabitLogRequest struct {
	Date string `validate:"required"`
}

var createHabitLogMessages = map[string]string{
	"Date": "Valid date is required",
}

type HabitLogsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
}

func NewHabitLogsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI) *HabitLogsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on habit logs service provided nil repos")
	}
	return &HabitLogsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
	}
}

// ownedHabit confirms the parent habit belongs to uid. Every log operation
// goes through it, so a foreign habit behaves like a missing one.
func (serv *HabitLogsService) ownedHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error) {
	return loadOwned(ctx, uid, errorvalues.ErrHabitNotFound, func(ctx context.Context) (*entity.Habit, error) {
		return serv.habitsRepo.GetByID(ctx, habitID)
	})
}

func (serv *HabitLogsService) List(ctx context.Context, habitID, uid uuid.UUID) ([]*entity.HabitLog, error) {
	if _, err := serv.ownedHabit(ctx, habitID, uid); err != nil {
		return nil, err
	}
	logs, err := serv.logsRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	return logs, nil
}

func (serv *HabitLogsService) Create(ctx context.Context, habitID, uid uuid.UUID, req *CreateHabitLogRequest) (*entity.HabitLog, error) {
	if _, err := serv.ownedHabit(ctx, habitID, uid); err != nil {
		return nil, err
	}
	if err := validateStruct(*req, createHabitLogMessages); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errorvalues.Validation("Valid date is required")
	}
	habitLog := entity.HabitLog{
		HabitID:   habitID,
		Date:      startOfDay(date),
		Completed: true,
	}
	if err := serv.logsRepo.Create(ctx, &habitLog); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	return &habitLog, nil
}

func (serv *HabitLogsService) Delete(ctx context.Context, habitID, logID, uid uuid.UUID) error {
	if _, err := serv.ownedHabit(ctx, habitID, uid); err != nil {
		return err
	}
	habitLog, err := serv.logsRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitLogNotFound) {
			return err
		}
		return errors.New("habit logs repository error: " + err.Error())
	}
	// A log addressed under someone else's habit path must look missing
	if habitLog.HabitID != habitID {
		return errorvalues.ErrHabitLogNotFound
	}
	err = serv.logsRepo.Delete(ctx, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitLogNotFound) {
			return err
		}
		return errors.New("habit logs repository error: " + err.Error())
	}
	return nil
}
