package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"task-sync/core/apperr"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("TagsPlainError", func(t *testing.T) {
		err := apperr.Wrap(apperr.KindStore, errors.New("connection refused"), "insert tasks")
		assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
		assert.Equal(t, "insert tasks: connection refused", err.Error())
	})

	t.Run("KeepsExistingKind", func(t *testing.T) {
		inner := apperr.Validation("bad count")
		err := apperr.Wrap(apperr.KindStore, fmt.Errorf("row 3: %w", inner), "insert tasks")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, apperr.Wrap(apperr.KindStore, nil, "noop"))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("boom")))
	assert.Equal(t, apperr.KindMalformedInput, apperr.KindOf(apperr.MalformedInput("missing %s", "x")))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(fmt.Errorf("row 2: %w", apperr.Validation("bad flag"))))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.KindMalformedInput, 400},
		{apperr.KindValidation, 422},
		{apperr.KindStore, 500},
		{apperr.KindInternal, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.HTTPStatus(tt.kind))
		})
	}
}
