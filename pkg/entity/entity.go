package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Expense struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HabitLog is a "done" mark for one habit on one calendar day.
// Date is stored at midnight, Completed is always true.
type HabitLog struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habitId"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *Expense) Owner() uuid.UUID { return e.UserID }
func (h *Habit) Owner() uuid.UUID   { return h.UserID }
func (t *Task) Owner() uuid.UUID    { return t.UserID }

type DashboardStats struct {
	ExpensesThisMonth float64 `json:"expensesThisMonth"`
	ActiveHabits      int     `json:"activeHabits"`
	HabitStreak       int     `json:"habitStreak"`
	PendingTasks      int     `json:"pendingTasks"`
	CompletedTasks    int     `json:"completedTasks"`
}
