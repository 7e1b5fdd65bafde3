package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeGone         ErrorType = "GONE"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal     ErrorType = "EXTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeEmailRequired    ErrorCode = "EMAIL_REQUIRED"
	ErrCodePasswordTooShort ErrorCode = "PASSWORD_TOO_SHORT"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"

	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserAlreadyExists ErrorCode = "USER_ALREADY_EXISTS"
	ErrCodeAccountExists     ErrorCode = "ACCOUNT_EXISTS"
	ErrCodeEmailTaken        ErrorCode = "EMAIL_TAKEN"
	ErrCodeWrongPassword     ErrorCode = "WRONG_PASSWORD"

	ErrCodeInvitationPending   ErrorCode = "INVITATION_ALREADY_PENDING"
	ErrCodeInvalidOrExpired    ErrorCode = "INVALID_OR_EXPIRED"
	ErrCodeInvitationUsed      ErrorCode = "ALREADY_USED"
	ErrCodeInvitationExpired   ErrorCode = "ALREADY_EXPIRED"
	ErrCodeEmailDispatchFailed ErrorCode = "EMAIL_DISPATCH_FAILED"

	ErrCodeAppNotFound      ErrorCode = "APP_NOT_FOUND"
	ErrCodeSlugTaken        ErrorCode = "SLUG_TAKEN"
	ErrCodeExternalURLEmpty ErrorCode = "EXTERNAL_URL_REQUIRED"

	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodePersistenceFailure ErrorCode = "PERSISTENCE_FAILURE"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	copied := *e
	copied.Cause = cause
	return &copied
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	copied := *e
	copied.Details = details
	return &copied
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewGoneError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeGone,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusGone,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodePersistenceFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewExternalError(message string, code ErrorCode, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("Invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("Token has expired", ErrCodeTokenExpired)
	ErrUnauthorized       = NewForbiddenError("You are not allowed to perform this action", ErrCodeUnauthorized)

	ErrEmailRequired    = NewValidationError("Email is required", ErrCodeEmailRequired)
	ErrPasswordTooShort = NewValidationError("Password must be at least 8 characters", ErrCodePasswordTooShort)

	ErrUserNotFound      = NewNotFoundError("User not found", ErrCodeUserNotFound)
	ErrUserAlreadyExists = NewConflictError("A user with this email already exists", ErrCodeUserAlreadyExists)
	ErrAccountExists     = NewConflictError("An account with this email already exists", ErrCodeAccountExists)
	ErrEmailTaken        = NewConflictError("This email is already used by another account", ErrCodeEmailTaken)
	ErrWrongPassword     = NewValidationError("Current password is incorrect", ErrCodeWrongPassword)

	ErrInvitationPending = NewConflictError("An invitation for this email is already pending", ErrCodeInvitationPending)
	ErrInvalidOrExpired  = NewNotFoundError("Invalid or expired invitation", ErrCodeInvalidOrExpired)
	ErrInvitationUsed    = NewGoneError("This invitation has already been used", ErrCodeInvitationUsed)
	ErrInvitationExpired = NewGoneError("This invitation has expired", ErrCodeInvitationExpired)

	ErrAppNotFound      = NewNotFoundError("App not found", ErrCodeAppNotFound)
	ErrSlugTaken        = NewConflictError("An app with this slug already exists", ErrCodeSlugTaken)
	ErrExternalURLEmpty = NewValidationError("External apps must have a URL", ErrCodeExternalURLEmpty)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
