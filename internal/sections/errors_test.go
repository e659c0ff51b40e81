package sections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUnknownSection(t *testing.T) {
	err := &ErrUnknownSection{ID: "nope"}
	assert.Equal(t, "unknown section: nope", err.Error())
}

func TestErrAlwaysVisible(t *testing.T) {
	err := &ErrAlwaysVisible{ID: "personalInfo"}
	assert.Equal(t, "section cannot be hidden: personalInfo", err.Error())
}

func TestErrSaveFailedUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ErrSaveFailed{Cause: cause}
	assert.Equal(t, "section order save failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
