package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

func (r *GormRepository) CreateAuditLog(
	ctx context.Context,
	entry *models.AuditLog,
) error {

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(entry).Error, "create audit log")
}

func (r *GormRepository) ListAuditLogs(
	ctx context.Context,
	f audit.Filter,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count audit logs")
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, translate(err, "list audit logs")
	}

	return logs, total, nil
}
