package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

func (r *GormRepository) CreateShift(
	ctx context.Context,
	s *models.Shift,
) error {

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Omit("Creator").Create(s).Error, "create shift")
}

func (r *GormRepository) GetShift(
	ctx context.Context,
	id uuid.UUID,
) (*models.Shift, error) {

	var s models.Shift
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get shift")
	}
	return &s, nil
}

func (r *GormRepository) ListShifts(
	ctx context.Context,
) ([]models.Shift, error) {

	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Order("start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, translate(err, "list shifts")
	}
	return shifts, nil
}

func (r *GormRepository) DeleteShift(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Shift{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "delete shift")
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
