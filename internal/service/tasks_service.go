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

const defaultTaskPriority = "medium"

type CreateTaskRequest struct {
	Title    string `validate:"required"`
	Priority string
}

var createTaskMessages = map[string]string{
	"Title": "Title is required",
}

type TasksService struct {
	repo repository.TasksRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	return &TasksService{
		repo: tasksRepo,
	}
}

func (ts *TasksService) List(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Task, error) {
	tasks, err := ts.repo.GetByUserID(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) Create(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateStruct(CreateTaskRequest{Title: title}, createTaskMessages); err != nil {
		return nil, err
	}
	priority := req.Priority
	if priority == "" {
		priority = defaultTaskPriority
	}
	task := entity.Task{
		UserID:   uid,
		Title:    title,
		Priority: priority,
	}
	if err := ts.repo.Create(ctx, &task); err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return &task, nil
}

func (ts *TasksService) SetCompleted(ctx context.Context, taskID, uid uuid.UUID, completed bool) (*entity.Task, error) {
	_, err := loadOwned(ctx, uid, errorvalues.ErrTaskNotFound, func(ctx context.Context) (*entity.Task, error) {
		return ts.repo.GetByID(ctx, taskID)
	})
	if err != nil {
		return nil, err
	}
	updated, err := ts.repo.UpdateCompleted(ctx, taskID, completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return updated, nil
}

func (ts *TasksService) Delete(ctx context.Context, taskID, uid uuid.UUID) error {
	_, err := loadOwned(ctx, uid, errorvalues.ErrTaskNotFound, func(ctx context.Context) (*entity.Task, error) {
		return ts.repo.GetByID(ctx, taskID)
	})
	if err != nil {
		return err
	}
	err = ts.repo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}
