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

type CreateExpenseRequest struct {
	Amount   float64 `validate:"required,gt=0"`
	Category string  `validate:"required"`
	Date     string  `validate:"required"`
	Notes    *string
}

var createExpenseMessages = map[string]string{
	"Amount":   "Valid amount is required",
	"Category": "Category is required",
	"Date":     "Valid date is required",
}

type ExpensesService struct {
	repo repository.ExpensesRepositoryI
}

func NewExpensesService(expensesRepo repository.ExpensesRepositoryI) *ExpensesService {
	if expensesRepo == nil {
		log.Fatal("provided nil expensesRepo")
	}
	return &ExpensesService{
		repo: expensesRepo,
	}
}

func (es *ExpensesService) List(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Expense, error) {
	expenses, err := es.repo.GetByUserID(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("expenses repository error: " + err.Error())
	}
	return expenses, nil
}

func (es *ExpensesService) Create(ctx context.Context, uid uuid.UUID, req *CreateExpenseRequest) (*entity.Expense, error) {
	if err := validateStruct(*req, createExpenseMessages); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errorvalues.Validation("Valid date is required")
	}
	expense := entity.Expense{
		UserID:   uid,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	}
	if err := es.repo.Create(ctx, &expense); err != nil {
		return nil, errors.New("expenses repository error: " + err.Error())
	}
	return &expense, nil
}

func (es *ExpensesService) Delete(ctx context.Context, expenseID, uid uuid.UUID) error {
	_, err := loadOwned(ctx, uid, errorvalues.ErrExpenseNotFound, func(ctx context.Context) (*entity.Expense, error) {
		return es.repo.GetByID(ctx, expenseID)
	})
	if err != nil {
		return err
	}
	err = es.repo.Delete(ctx, expenseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExpenseNotFound) {
			return err
		}
		return errors.New("expenses repository error: " + err.Error())
	}
	return nil
}
