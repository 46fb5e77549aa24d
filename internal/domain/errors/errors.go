package errors

import (
	"net/http"

	"vidtube/internal/errors"
)

// Kind is the closed set of failure classes a client can observe.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

// HTTPCode maps the kind to its response status.
func (k Kind) HTTPCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Per-field violations or extra context (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() any {
	return e.details
}

// Is matches copies made by WithDetails/WithMessage against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.kind == e.kind && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying extra context
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a more specific client-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// FieldViolation describes one failed validation rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// NewValidationError reports every violation found in one pass.
func NewValidationError(violations []FieldViolation) *BaseError {
	return ErrValidationFailed.WithDetails(violations)
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(KindValidation, "VALIDATION_FAILED", "input validation failed")
	ErrInvalidID        = NewBaseError(KindValidation, "INVALID_ID", "invalid identifier")
	ErrInvalidPage      = NewBaseError(KindValidation, "INVALID_PAGINATION", "page and limit must be positive integers")
	ErrInvalidSort      = NewBaseError(KindValidation, "INVALID_SORT", "unsupported sort field or direction")
	ErrUploadFailed     = NewBaseError(KindValidation, "UPLOAD_FAILED", "file upload failed")
	ErrMissingFile      = NewBaseError(KindValidation, "FILE_REQUIRED", "file is required")
	ErrWrongPassword    = NewBaseError(KindValidation, "WRONG_PASSWORD", "old password is incorrect")
	ErrSelfSubscription = NewBaseError(KindValidation, "SELF_SUBSCRIPTION", "cannot subscribe to your own channel")

	// Authentication
	ErrUnauthorized        = NewBaseError(KindAuth, "UNAUTHORIZED", "unauthorized request")
	ErrTokenMissing        = NewBaseError(KindAuth, "TOKEN_MISSING", "access token is missing")
	ErrTokenExpired        = NewBaseError(KindAuth, "TOKEN_EXPIRED", "token has expired")
	ErrTokenInvalid        = NewBaseError(KindAuth, "TOKEN_INVALID", "token is invalid")
	ErrInvalidCredentials  = NewBaseError(KindAuth, "INVALID_CREDENTIALS", "invalid user credentials")
	ErrRefreshTokenInvalid = NewBaseError(KindAuth, "REFRESH_TOKEN_INVALID", "refresh token is expired or used")

	// Not found
	ErrNotFound         = NewBaseError(KindNotFound, "NOT_FOUND", "resource not found")
	ErrUserNotFound     = NewBaseError(KindNotFound, "USER_NOT_FOUND", "user not found")
	ErrChannelNotFound  = NewBaseError(KindNotFound, "CHANNEL_NOT_FOUND", "channel does not exist")
	ErrVideoNotFound    = NewBaseError(KindNotFound, "VIDEO_NOT_FOUND", "video not found")
	ErrCommentNotFound  = NewBaseError(KindNotFound, "COMMENT_NOT_FOUND", "comment not found")
	ErrTweetNotFound    = NewBaseError(KindNotFound, "TWEET_NOT_FOUND", "tweet not found")
	ErrPlaylistNotFound = NewBaseError(KindNotFound, "PLAYLIST_NOT_FOUND", "playlist not found")

	// Conflict
	ErrConflict          = NewBaseError(KindConflict, "CONFLICT", "resource conflict")
	ErrUserAlreadyExists = NewBaseError(KindConflict, "USER_ALREADY_EXISTS", "user with email or username already exists")

	// Internal
	ErrInternalError      = NewBaseError(KindInternal, "INTERNAL_ERROR", "internal server error")
	ErrPasswordHashFailed = NewBaseError(KindInternal, "PASSWORD_HASH_FAILED", "password processing failed")
	ErrTokenIssueFailed   = NewBaseError(KindInternal, "TOKEN_ISSUE_FAILED", "something went wrong while generating tokens")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
