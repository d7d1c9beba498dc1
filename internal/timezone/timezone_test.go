package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus_Mons"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, time.UTC.String(), Location("nope").String())
	assert.Equal(t, "Europe/Berlin", Location("Europe/Berlin").String())
}

func TestSetDefaultIgnoresInvalid(t *testing.T) {
	t.Cleanup(func() { SetDefault(DefaultTimezone) })

	SetDefault("Europe/Lisbon")
	assert.Equal(t, "Europe/Lisbon", Default())

	SetDefault("bogus")
	assert.Equal(t, "Europe/Lisbon", Default())
	assert.Equal(t, "Europe/Lisbon", Location("").String())
}
