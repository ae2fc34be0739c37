package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/domain"
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/repository"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config *config.Config
}

func CreateUserService(repo repository.UserRepository, config *config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

// taken reports whether lookup found an existing user.
func taken(_ domain.User, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}

	return false, err
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.UserResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	exists, err := taken(s.repo.GetUserByEmail(ctx, req.Email))
	if err != nil {
		return
	}
	if !exists {
		exists, err = taken(s.repo.GetUserByPhoneNumber(ctx, req.PhoneNumber))
		if err != nil {
			return
		}
	}
	if exists {
		return resp, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return resp, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ExternalID:     ulid.Make().String(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		HashedPassword: string(hash),
		Role:           domain.RoleUser,
	}

	id, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	user.ID, _ = primitive.ObjectIDFromHex(id)

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	var user domain.User
	if req.Email != "" {
		user, err = s.repo.GetUserByEmail(ctx, req.Email)
	} else {
		user, err = s.repo.GetUserByPhoneNumber(ctx, req.PhoneNumber)
	}
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return resp, errs.ErrInvalidCredentialsEmail
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Login").Str("user_id", user.ID.Hex()).Msg("")
		return resp, errs.ErrWrongPassword
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Role, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Token = token
	resp.UserID = user.ID.Hex()

	return
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return resp, errs.ErrAccountNotFound
		}
		return
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (resp dto.UserResponse, err error) {
	if err = req.Validate(); err != nil {
		return
	}

	user, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return resp, errs.ErrAccountNotFound
		}
		return
	}

	if req.Username != "" && req.Username != user.Username {
		other, lookupErr := s.repo.GetUserByUsername(ctx, req.Username)
		if lookupErr == nil && other.ID != user.ID {
			return resp, errs.ErrUsernameAlreadyUsed
		}
		if lookupErr != nil && !errors.Is(lookupErr, errs.ErrNotFound) {
			return resp, lookupErr
		}
		user.Username = req.Username
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	user.Address = req.Address
	user.ZipCode = req.ZipCode
	user.City = req.City
	user.Province = req.Province
	user.Country = req.Country

	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return resp, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) IsAdmin(ctx context.Context, id string) (ok bool, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return
	}

	return user.Role == domain.RoleAdmin, nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	if err = req.Validate(); err != nil {
		return
	}

	user, err := s.repo.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrAccountNotFound
		}
		return
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.OldPassword)); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ChangePassword").Str("user_id", req.UserID).Msg("")
		return errs.ErrOldPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, req.UserID, string(hash))
}

// DeleteUser removes the account along with its carts, wishlists and
// transactions.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (err error) {
	if _, err = s.repo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrAccountNotFound
		}
		return
	}

	if err = s.repo.DeleteUser(ctx, id); err != nil {
		return
	}

	log.Ctx(ctx).Info().Str("component", "DeleteUser").Str("user_id", id).Msg("user deleted")

	return nil
}
