package service

import (
	"context"
	"testing"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "secret"

func newUserService() (UserService, *MockUserRepository) {
	repo := new(MockUserRepository)
	return CreateUserService(repo, &config.Config{JWTSecret: testJWTSecret}), repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:   "Budi",
		LastName:    "Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "08123456789",
		Password:    "rahasia",
	}
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := newUserService()
		id := primitive.NewObjectID()

		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(domain.User{}, errs.ErrNotFound)
		repo.On("GetUserByPhoneNumber", mock.Anything, "08123456789").Return(domain.User{}, errs.ErrNotFound)
		repo.On("AddUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Role == domain.RoleUser &&
				u.ExternalID != "" &&
				bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("rahasia")) == nil
		})).Return(id.Hex(), nil)

		resp, err := svc.Register(context.Background(), registerRequest())
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), resp.ID)
		assert.Equal(t, domain.RoleUser, resp.Role)

		repo.AssertExpectations(t)
	})

	t.Run("email already used", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(domain.User{Email: "budi@example.com"}, nil)

		_, err := svc.Register(context.Background(), registerRequest())
		assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
		repo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})

	t.Run("phone already used", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(domain.User{}, errs.ErrNotFound)
		repo.On("GetUserByPhoneNumber", mock.Anything, "08123456789").Return(domain.User{}, nil)

		_, err := svc.Register(context.Background(), registerRequest())
		assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc, repo := newUserService()
		req := registerRequest()
		req.Password = "abc"
		req.PhoneNumber = "0812"

		_, err := svc.Register(context.Background(), req)
		var vErrs validation.Errors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs, "password")
		assert.Contains(t, vErrs, "phoneNumber")
		repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	user := domain.User{
		ID:             primitive.NewObjectID(),
		Email:          "budi@example.com",
		PhoneNumber:    "08123456789",
		HashedPassword: string(hash),
		Role:           domain.RoleAdmin,
	}

	t.Run("by email", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(user, nil)

		resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "budi@example.com", Password: "rahasia"})
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), resp.UserID)

		userID, err := utils.ParseJWTToken(resp.Token, testJWTSecret)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), userID)
	})

	t.Run("by phone number", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByPhoneNumber", mock.Anything, "08123456789").Return(user, nil)

		resp, err := svc.Login(context.Background(), dto.LoginRequest{PhoneNumber: "08123456789", Password: "rahasia"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(domain.User{}, errs.ErrNotFound)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "rahasia"})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentialsEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "budi@example.com", Password: "salah"})
		assert.ErrorIs(t, err, errs.ErrWrongPassword)
	})
}

func TestUpdateUser(t *testing.T) {
	id := primitive.NewObjectID()
	user := domain.User{ID: id, FirstName: "Budi", LastName: "Santoso", Username: "budi"}

	t.Run("username taken", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, id.Hex()).Return(user, nil)
		repo.On("GetUserByUsername", mock.Anything, "siti").Return(domain.User{ID: primitive.NewObjectID(), Username: "siti"}, nil)

		_, err := svc.UpdateUser(context.Background(), dto.UpdateUserRequest{ID: id.Hex(), Username: "siti"})
		assert.ErrorIs(t, err, errs.ErrUsernameAlreadyUsed)
		repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("invalid username", func(t *testing.T) {
		svc, _ := newUserService()

		_, err := svc.UpdateUser(context.Background(), dto.UpdateUserRequest{ID: id.Hex(), Username: "budi santoso!"})
		var vErrs validation.Errors
		assert.ErrorAs(t, err, &vErrs)
	})

	t.Run("updates address", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, id.Hex()).Return(user, nil)
		repo.On("GetUserByUsername", mock.Anything, "budi_s").Return(domain.User{}, errs.ErrNotFound)
		repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "budi_s" && u.City == "Bandung" && u.FirstName == "Budi"
		})).Return(nil)

		resp, err := svc.UpdateUser(context.Background(), dto.UpdateUserRequest{ID: id.Hex(), Username: "budi_s", City: "Bandung"})
		require.NoError(t, err)
		assert.Equal(t, "budi_s", resp.Username)
		repo.AssertExpectations(t)
	})

	t.Run("missing account", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, id.Hex()).Return(domain.User{}, errs.ErrNotFound)

		_, err := svc.UpdateUser(context.Background(), dto.UpdateUserRequest{ID: id.Hex()})
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestIsAdmin(t *testing.T) {
	svc, repo := newUserService()
	admin := primitive.NewObjectID()
	regular := primitive.NewObjectID()

	repo.On("GetUserByID", mock.Anything, admin.Hex()).Return(domain.User{ID: admin, Role: domain.RoleAdmin}, nil)
	repo.On("GetUserByID", mock.Anything, regular.Hex()).Return(domain.User{ID: regular, Role: domain.RoleUser}, nil)
	repo.On("GetUserByID", mock.Anything, "gone").Return(domain.User{}, errs.ErrNotFound)

	ok, err := svc.IsAdmin(context.Background(), admin.Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(context.Background(), regular.Hex())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAdmin(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChangePassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	id := primitive.NewObjectID()
	user := domain.User{ID: id, HashedPassword: string(hash)}

	t.Run("updates the hash", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, id.Hex()).Return(user, nil)
		repo.On("UpdatePassword", mock.Anything, id.Hex(), mock.MatchedBy(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("barubaru")) == nil
		})).Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{UserID: id.Hex(), OldPassword: "rahasia", NewPassword: "barubaru"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("old password mismatch", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, id.Hex()).Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{UserID: id.Hex(), OldPassword: "salah", NewPassword: "barubaru"})

		assert.ErrorIs(t, err, errs.ErrOldPasswordMismatch)
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new password too short", func(t *testing.T) {
		svc, repo := newUserService()

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{UserID: id.Hex(), OldPassword: "rahasia", NewPassword: "abcd"})

		var vErrs validation.Errors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs, "newPassword")
		repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, "gone").Return(domain.User{}, errs.ErrNotFound)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{UserID: "gone", OldPassword: "rahasia", NewPassword: "barubaru"})

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("deletes account and data", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, id.Hex()).Return(domain.User{ID: id}, nil)
		repo.On("DeleteUser", mock.Anything, id.Hex()).Return(nil)

		require.NoError(t, svc.DeleteUser(context.Background(), id.Hex()))
		repo.AssertExpectations(t)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, repo := newUserService()
		repo.On("GetUserByID", mock.Anything, "gone").Return(domain.User{}, errs.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), "gone"), errs.ErrAccountNotFound)
		repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}
