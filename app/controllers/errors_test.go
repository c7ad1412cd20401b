package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/warehouse/app/repositories"
	"github.com/shashiranjanraj/warehouse/app/services"
)

func TestFail(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"phone": "bad"}}, http.StatusUnprocessableEntity, `"phone":"bad"`},
		{"not found", fmt.Errorf("supplier 3: %w", repositories.ErrNotFound), http.StatusNotFound, `"Not found"`},
		{"duplicate email", fmt.Errorf("%w: unique", repositories.ErrDuplicateEmail), http.StatusConflict, "email already exists"},
		{"bare conflict", repositories.ErrConflict, http.StatusConflict, "conflicts with existing data"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			fail(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}
