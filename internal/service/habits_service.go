package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/internal/repository"
	"github.com/lifehub/lifehub/pkg/entity"
)

type CreateHabitRequest struct {
	Name        string `validate:"required"`
	Description string
}

var createHabitMessages = map[string]string{
	"Name": "Name is required",
}

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) Create(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateStruct(CreateHabitRequest{Name: name}, createHabitMessages); err != nil {
		return nil, err
	}
	var description *string
	if desc := strings.TrimSpace(req.Description); desc != "" {
		description = &desc
	}
	habit := entity.Habit{
		UserID:      uid,
		Name:        name,
		Description: description,
	}
	if err := hs.repo.Create(ctx, &habit); err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return &habit, nil
}

func (hs *HabitsService) Delete(ctx context.Context, habitID, uid uuid.UUID) error {
	_, err := loadOwned(ctx, uid, errorvalues.ErrHabitNotFound, func(ctx context.Context) (*entity.Habit, error) {
		return hs.repo.GetByID(ctx, habitID)
	})
	if err != nil {
		return err
	}
	err = hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
