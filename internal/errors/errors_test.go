package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"not found", NotFoundError("template %q not found", "greeting"), KindNotFound},
		{"already exists", AlreadyExistsError("version %q already exists", "1.0.0"), KindAlreadyExists},
		{"validation", ValidationError("bad metadata", stderrors.New("missing version")), KindValidationFailure},
		{"io", IOError("read failed", fs.ErrPermission), KindIOFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestPredicatesWalkWrappedChains(t *testing.T) {
	err := fmt.Errorf("loading template: %w", NotFoundError("metadata file missing"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsAlreadyExists(err))
	assert.False(t, IsValidationFailure(err))
	assert.False(t, IsIOFailure(err))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := fs.ErrPermission
	err := IOError("writing content", cause)

	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.ErrorContains(t, err, "writing content")
}

func TestKindOfDefaultsToIOFailure(t *testing.T) {
	assert.Equal(t, KindIOFailure, KindOf(stderrors.New("plain error")))
}

func TestErrorMessageFormat(t *testing.T) {
	err := NotFoundError("template %q not found", "t")
	assert.Equal(t, `NOT_FOUND: template "t" not found`, err.Error())

	wrapped := ValidationError("parsing metadata", stderrors.New("boom"))
	assert.Equal(t, "VALIDATION_FAILURE: parsing metadata: boom", wrapped.Error())
}
