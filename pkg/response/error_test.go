package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		err    *BizError
		status int
		label  string
	}{
		{NewValidationError("bad"), http.StatusBadRequest, LabelValidation},
		{NewAuthError("who"), http.StatusUnauthorized, LabelAuth},
		{NewNotFoundError("gone"), http.StatusNotFound, LabelNotFound},
		{NewError(http.StatusInternalServerError, "boom"), http.StatusInternalServerError, LabelInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.label, tc.err.Label)
		assert.Equal(t, tc.err.Msg, tc.err.Error())
	}
}

func TestIsStatus(t *testing.T) {
	wrapped := fmt.Errorf("delete: %w", NewNotFoundError("gone"))

	assert.True(t, IsStatus(wrapped, http.StatusNotFound))
	assert.False(t, IsStatus(wrapped, http.StatusBadRequest))
	assert.False(t, IsStatus(fmt.Errorf("plain"), http.StatusNotFound))
}

func TestLabel_Unknown(t *testing.T) {
	assert.Equal(t, "I'm a teapot", Label(http.StatusTeapot))
}
