package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	forbidden := Forbidden("Access denied")
	wrapped := fmt.Errorf("get patient: %w", forbidden)

	assert.Equal(t, KindForbidden, KindOf(forbidden))
	assert.Equal(t, KindForbidden, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, forbidden))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Patient not found", MessageOf(NotFound("Patient not found"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("redis down"), "fallback"))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "Failed to resolve session", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
