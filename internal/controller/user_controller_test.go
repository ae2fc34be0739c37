package controller

import (
	"net/http"
	"testing"

	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserServer(svc *MockUserService, userID string) *echo.Echo {
	e := echo.New()
	CreateUserController(e.Group("/api/v1"), svc, asUser(userID))
	return e
}

func TestChangePassword(t *testing.T) {
	testCases := []struct {
		Name           string
		Err            error
		ExpectedStatus int
	}{
		{Name: "changed", Err: nil, ExpectedStatus: http.StatusOK},
		{Name: "old password mismatch", Err: errs.ErrOldPasswordMismatch, ExpectedStatus: http.StatusBadRequest},
		{Name: "unknown account", Err: errs.ErrAccountNotFound, ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			svc := new(MockUserService)
			req := dto.ChangePasswordRequest{UserID: "user-1", OldPassword: "rahasia", NewPassword: "barubaru"}
			svc.On("ChangePassword", mock.Anything, req).Return(tc.Err)

			rec := do(newUserServer(svc, "user-1"), http.MethodPut, "/api/v1/auth/change-password", `{"oldPassword":"rahasia","newPassword":"barubaru"}`)

			assert.Equal(t, tc.ExpectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("own account", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("DeleteUser", mock.Anything, "user-1").Return(nil)

		rec := do(newUserServer(svc, "user-1"), http.MethodDelete, "/api/v1/users/user-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
		svc.AssertExpectations(t)
	})

	t.Run("other account as regular user", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("IsAdmin", mock.Anything, "user-2").Return(false, nil)

		rec := do(newUserServer(svc, "user-2"), http.MethodDelete, "/api/v1/users/user-1", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("other account as admin", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil)
		svc.On("DeleteUser", mock.Anything, "user-1").Return(nil)

		rec := do(newUserServer(svc, "admin-1"), http.MethodDelete, "/api/v1/users/user-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("DeleteUser", mock.Anything, "user-1").Return(errs.ErrAccountNotFound)

		rec := do(newUserServer(svc, "user-1"), http.MethodDelete, "/api/v1/users/user-1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
