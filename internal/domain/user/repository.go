package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type Repository interface {
	// CreateUser returns store.ErrDuplicate when email or username is taken.
	CreateUser(ctx context.Context, u *models.User) error

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	FindUserByUsername(ctx context.Context, username string) (*models.User, error)

	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}
