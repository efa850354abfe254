package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad input")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Authentication("no token")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Authorization("wrong role")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("duplicate")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := Conflict("duplicate application")
	wrapped := fmt.Errorf("submit: %w", inner)

	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("E11000 duplicate key")
	err := Wrap(KindConflict, cause, "application already exists")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "application already exists")
	assert.Contains(t, err.Error(), "E11000")
}
