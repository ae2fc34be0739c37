package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

type DataWithPaginationsResponse struct {
	Data       interface{} `json:"data,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusOK, message, data)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusCreated, message, data)
}

func writeSuccess(c echo.Context, status int, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Data = data
	resp.Message = message

	return c.JSON(status, resp)
}

// WriteErrorResponse writes err with the status from errs. Validation errors
// from ozzo-validation are flattened into field/tag pairs and reported as 400.
// Internal errors are reported with a generic message.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Success = false
	resp.Message = err.Error()
	resp.Errors = errors

	if fieldErrs := validationErrors(err); fieldErrs != nil {
		statusCode = http.StatusBadRequest
		resp.Message = errs.ErrValidation.Error()
		resp.Errors = fieldErrs
	}

	if statusCode == http.StatusInternalServerError {
		resp.Message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, resp)
}

func validationErrors(err error) []ValidationError {
	var vErrs validation.Errors
	if !errors.As(err, &vErrs) {
		return nil
	}

	res := make([]ValidationError, 0, len(vErrs))
	for field, fieldErr := range vErrs {
		res = append(res, ValidationError{Field: field, Tag: fieldErr.Error()})
	}

	return res
}
