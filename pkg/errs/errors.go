package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidToken            = errors.New("Invalid token")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrWrongPassword           = errors.New("Password is incorrect")
	ErrOldPasswordMismatch     = errors.New("Old password does not match")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email or phone number has already been used")
	ErrUsernameAlreadyUsed     = errors.New("Username has already been used")
	ErrConflict                = errors.New("Conflicting record found")
	ErrAlreadyInWishlist       = errors.New("Product is already in the wishlist")
	ErrOrderNotFound           = errors.New("Transaction not found")
	ErrInvalidSignature        = errors.New("Invalid Signature key")
	ErrInvalidStatus           = errors.New("Invalid status")
	ErrEmptyProducts           = errors.New("Products must not be empty")
	ErrInvalidGrossAmount      = errors.New("Gross amount is not valid")
	ErrMissingShipping         = errors.New("All shipping fields are required")
	ErrPaymentGateway          = errors.New("Failed to create transaction in payment gateway")
	ErrShippingProvider        = errors.New("Failed to reach shipping provider")
	ErrValidation              = errors.New("Validation failed")
)

// errorStatuses is ordered from specific to generic. An error wrapping more
// than one sentinel resolves to the first entry it matches.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrNotLoggedIn, ErrStatusNotLoggedIn},
	{ErrInvalidToken, ErrStatusNotLoggedIn},
	{ErrInvalidCredentialsEmail, ErrStatusUnauthorized},
	{ErrWrongPassword, ErrStatusUnauthorized},
	{ErrOldPasswordMismatch, ErrStatusClient},
	{ErrUnauthorized, ErrStatusUnauthorized},
	{ErrAccountNotFound, ErrStatusNotFound},
	{ErrEmailAlreadyUsed, ErrStatusClient},
	{ErrUsernameAlreadyUsed, ErrStatusClient},
	{ErrAlreadyInWishlist, ErrStatusClient},
	{ErrOrderNotFound, ErrStatusNotFound},
	{ErrInvalidSignature, ErrStatusClient},
	{ErrInvalidStatus, ErrStatusClient},
	{ErrEmptyProducts, ErrStatusClient},
	{ErrInvalidGrossAmount, ErrStatusClient},
	{ErrMissingShipping, ErrStatusClient},
	{ErrPaymentGateway, ErrStatusBadGateway},
	{ErrShippingProvider, ErrStatusBadGateway},
	{ErrValidation, ErrStatusClient},
	{ErrConflict, ErrStatusConflict},
	{ErrNotFound, ErrStatusNotFound},
	{ErrClient, ErrStatusClient},
	{ErrInternalServer, ErrStatusInternalServer},
}

// GetErrorStatusCode maps err, or the first known error it wraps, to an HTTP
// status. Unknown errors are internal server errors.
func GetErrorStatusCode(err error) int {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			return known.status
		}
	}

	return ErrStatusInternalServer
}
