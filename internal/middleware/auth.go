package middleware

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/response"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const (
	userIDKey = "userId"
	tokenKey  = "user"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, id string) (bool, error)
}

// UserID returns the id of the authenticated user, or "" outside IsLoggedIn.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

// IsLoggedIn validates the Bearer token and exposes its userId claim through
// UserID.
func IsLoggedIn(jwtSecret string) echo.MiddlewareFunc {
	validate := echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey:    []byte(jwtSecret),
		SigningMethod: echomiddleware.AlgorithmHS256,
		ContextKey:    tokenKey,
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			var validationErr *jwt.ValidationError
			if !errors.As(err, &validationErr) {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			log.Ctx(c.Request().Context()).Warn().Err(err).Str("component", "IsLoggedIn").Msg("")
			return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return validate(func(c echo.Context) error {
			token, _ := c.Get(tokenKey).(*jwt.Token)
			if token == nil {
				return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
			}

			userID, err := utils.UserIDFromToken(token)
			if err != nil {
				log.Ctx(c.Request().Context()).Warn().Err(err).Str("component", "IsLoggedIn").Msg("")
				return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
			}

			c.Set(userIDKey, userID)

			logger := log.Ctx(c.Request().Context()).With().Str("user_id", userID).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

			return next(c)
		})
	}
}

// IsAdmin must run after IsLoggedIn. The role is read from storage so that
// demoted admins lose access before their token expires.
func IsAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := checker.IsAdmin(c.Request().Context(), UserID(c))
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
			}

			return next(c)
		}
	}
}
