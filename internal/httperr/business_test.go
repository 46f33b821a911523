package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordBusiness(t *testing.T, err error) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	return w, Business(c, err)
}

func TestBusinessStatusMapping(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{"invalid_transition", http.StatusUnprocessableEntity},
		{"missing_driver", http.StatusBadRequest},
		{"missing_reason", http.StatusBadRequest},
		{"invalid_month", http.StatusBadRequest},
		{"ride_not_found", http.StatusNotFound},
		{"driver_not_found", http.StatusNotFound},
		{"car_not_found", http.StatusNotFound},
		{"conflict", http.StatusConflict},
		// código desconhecido cai no 400 genérico
		{"whatever", http.StatusBadRequest},
	}

	for _, tc := range cases {
		w, handled := recordBusiness(t, ErrBusiness(tc.code))
		assert.True(t, handled, tc.code)
		assert.Equal(t, tc.status, w.Code, tc.code)
		assert.Contains(t, w.Body.String(), tc.code)
	}
}

func TestBusinessIgnoresOtherErrors(t *testing.T) {
	w, handled := recordBusiness(t, errors.New("boom"))
	assert.False(t, handled)
	assert.Equal(t, http.StatusOK, w.Code) // nada escrito
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(ErrBusiness("conflict"), "conflict"))
	assert.False(t, IsBusiness(ErrBusiness("conflict"), "ride_not_found"))
	assert.False(t, IsBusiness(errors.New("boom"), "conflict"))
}
