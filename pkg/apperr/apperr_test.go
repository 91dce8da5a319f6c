package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("review not found")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("only review owner can edit")))
	assert.Equal(t, KindConflict, KindOf(Conflict("email already registered")))
	assert.Equal(t, KindInvalidCredentials, KindOf(InvalidCredentials("invalid email or password")))
	assert.Equal(t, KindStore, KindOf(Store("find review", errors.New("connection reset"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain error")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("delete review abc: %w", Forbidden("only review owner can delete"))
	assert.True(t, IsForbidden(err))
	assert.False(t, IsNotFound(err))
}

func TestStoreWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("append review id", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "append review id")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMessageIsErrorText(t *testing.T) {
	assert.Equal(t, "user not found", NotFound("user not found").Error())
}
