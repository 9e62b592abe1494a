package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"plain new", New(NotFound, "city not found"), NotFound},
		{"formatted", Newf(TooLarge, "image exceeds the %d MiB limit", 5), TooLarge},
		{"wrapped cause", Wrap(Database, "insert failed", errors.New("boom")), Database},
		{"through fmt.Errorf", fmt.Errorf("create: %w", New(Validation, "name is required")), Validation},
		{"unclassified", errors.New("boom"), Unknown},
		{"nil chain", fmt.Errorf("outer: %w", errors.New("inner")), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}
}

func TestMessageHidesCause(t *testing.T) {
	cause := errors.New("connection refused 10.0.0.5:27017")
	err := Wrap(Database, "couldn't insert city record", cause)

	assert.Equal(t, "couldn't insert city record", Message(err))
	assert.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}

func TestMessageUnclassified(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "boom", Message(err))
}
