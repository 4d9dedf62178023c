package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a bearer token is missing, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAdminRequired is returned when the live user record lacks the admin flag.
	ErrAdminRequired = errors.New("admin privileges required")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned when registering with a username that already exists.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrUserNotFound is returned when a user record is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrSellerNotFound is returned when a seller record is absent.
	ErrSellerNotFound = errors.New("seller not found")
	// ErrProductNotFound is returned when a product record is absent.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order record is absent.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAccessDenied is returned when a user touches an order they do not own.
	ErrOrderAccessDenied = errors.New("order belongs to another user")
	// ErrInvalidPrice is returned when a product price is not strictly positive.
	ErrInvalidPrice = errors.New("price must be greater than zero")
	// ErrInvalidCommission is returned when a commission percent is outside [0,100].
	ErrInvalidCommission = errors.New("commission percent must be between 0 and 100")
	// ErrInvalidOrderCount is returned when an order count is not a positive integer.
	ErrInvalidOrderCount = errors.New("order count must be at least 1")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrOrderAccessDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ORDER_ACCESS_DENIED")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrSellerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SELLER_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrInvalidCommission):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COMMISSION")
	case errors.Is(err, ErrInvalidOrderCount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ORDER_COUNT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
