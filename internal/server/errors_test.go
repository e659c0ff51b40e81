package server

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrCVNotFound(t *testing.T) {
	id := uuid.New()
	err := &ErrCVNotFound{ID: id}
	assert.Equal(t, "cv not found: "+id.String(), err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "title", Message: "is required"}
	assert.Equal(t, "validation error: title - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatusFallback(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(nil))
}
