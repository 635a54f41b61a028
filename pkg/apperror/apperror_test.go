package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKindSentinels(t *testing.T) {
	errHeight := Validation("height", "invalid_height")

	assert.ErrorIs(t, errHeight, ErrValidation)
	assert.ErrorIs(t, errHeight, Validation("height", "invalid_height"))
	assert.NotErrorIs(t, errHeight, ErrNotFound)
	assert.NotErrorIs(t, errHeight, Validation("width", "invalid_width"))
}

func TestIsSurvivesWrapping(t *testing.T) {
	errMissing := NotFound("customer_not_found")
	wrapped := fmt.Errorf("load customer: %w", errMissing)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestPersistenceTransient(t *testing.T) {
	cause := errors.New("database is locked")
	err := Persistence("write_failed", cause, true)

	assert.True(t, IsTransient(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsTransient(Persistence("write_failed", cause, false)))
	assert.False(t, IsTransient(Validation("x", "invalid_x")))
	assert.Equal(t, "write_failed: database is locked", err.Error())
}

func TestWrapKeepsIdentity(t *testing.T) {
	base := Precondition("missing_customer")
	cause := errors.New("draft has no customer")
	wrapped := base.Wrap(cause)

	assert.ErrorIs(t, wrapped, base)
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, base.Err)
}
