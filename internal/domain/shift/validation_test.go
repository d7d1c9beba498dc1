package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

func TestValidate(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		shift    models.Shift
		wantCode string
	}{
		{"valid", models.Shift{Title: "Morning", StartTime: start, EndTime: start.Add(8 * time.Hour)}, ""},
		{"blank title", models.Shift{Title: "  ", StartTime: start, EndTime: start.Add(time.Hour)}, CodeTitleRequired},
		{"equal bounds", models.Shift{Title: "x", StartTime: start, EndTime: start}, CodeInvalidInterval},
		{"end before start", models.Shift{Title: "x", StartTime: start, EndTime: start.Add(-time.Minute)}, CodeInvalidInterval},
		{"missing end", models.Shift{Title: "x", StartTime: start}, CodeInvalidInterval},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.shift)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.wantCode), "got %v", err)
			kind, ok := httperr.KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, httperr.KindValidation, kind)
		})
	}
}
