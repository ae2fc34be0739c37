package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		Name     string
		Err      error
		Expected int
	}{
		{Name: "order not found", Err: ErrOrderNotFound, Expected: http.StatusNotFound},
		{Name: "invalid signature", Err: ErrInvalidSignature, Expected: http.StatusBadRequest},
		{Name: "wrapped conflict", Err: fmt.Errorf("updating transaction: %w", ErrConflict), Expected: http.StatusConflict},
		{Name: "gateway failure", Err: ErrPaymentGateway, Expected: http.StatusBadGateway},
		{Name: "wraps specific and generic", Err: fmt.Errorf("%w: %w", ErrNotFound, ErrOrderNotFound), Expected: http.StatusNotFound},
		{Name: "wraps conflict and client", Err: errors.Join(ErrClient, ErrConflict), Expected: http.StatusConflict},
		{Name: "wraps gateway and internal", Err: errors.Join(ErrInternalServer, ErrPaymentGateway), Expected: http.StatusBadGateway},
		{Name: "old password mismatch", Err: ErrOldPasswordMismatch, Expected: http.StatusBadRequest},
		{Name: "unknown", Err: errors.New("mongo: connection reset"), Expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, GetErrorStatusCode(tc.Err))
		})
	}
}

func TestGetErrorStatusCode_StableAcrossCalls(t *testing.T) {
	err := errors.Join(ErrClient, ErrInternalServer, ErrPaymentGateway)

	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusBadGateway, GetErrorStatusCode(err))
	}
}
