package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the review/profile domain.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidStatus rejects a state transition that the lifecycle does not
// define (e.g. moderating a lawyer profile that is no longer pending).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrEmailNotConfirmed = New(
	CodeForbidden,
	"auth",
	"Please confirm your email address before logging in",
	http.StatusForbidden,
)

// ErrUserNotFound covers the half-finished signup: the session is valid but
// no internal user row is linked to it.
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User record not found",
	http.StatusNotFound,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Reviews ---

var ErrNotReviewOwner = New(
	CodeForbidden,
	"review",
	"Only the author may modify this review",
	http.StatusForbidden,
)

var ErrReviewNotRevisable = New(
	CodeInvalidStatus,
	"review",
	"Only rejected reviews can be revised",
	http.StatusConflict,
)

// ErrProfileNotApproved guards review submission behind license verification.
var ErrProfileNotApproved = New(
	CodeForbidden,
	"profile",
	"Only approved users can submit reviews",
	http.StatusForbidden,
)
