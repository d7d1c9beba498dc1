package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
)

// GormRepository is the PostgreSQL-backed store for every entity.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Compile-time checks
var (
	_ assignment.Repository = (*GormRepository)(nil)
	_ shift.Repository      = (*GormRepository)(nil)
	_ user.Repository       = (*GormRepository)(nil)
	_ audit.Store           = (*GormRepository)(nil)
)

func (r *GormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
