package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictError_MatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("creating user: %w", &ConflictError{Constraint: "users_email_key"})

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "users_email_key", conflict.Constraint)
	assert.Equal(t, "conflict: users_email_key", conflict.Error())
}

func TestSentinels_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidPassword))
	assert.False(t, errors.Is(ErrInvalidPassword, ErrInternal))
}
