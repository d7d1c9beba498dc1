package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "op"))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound, "op"), store.ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey, "op"), store.ErrDuplicate)

	pgErr := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, translate(pgErr, "op"), store.ErrDuplicate)

	other := errors.New("boom")
	err := translate(other, "create shift")
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "create shift")
}
