package api

import (
	"github.com/google/uuid"
)

type TokenServiceI interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}
