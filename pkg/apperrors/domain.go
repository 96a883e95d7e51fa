package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors and predefined variables for the
// frequent, static domain errors.

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound) as 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation as 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidStatus reports an operation attempted in a disallowed status.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth & account status ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

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
	http.StatusBadRequest,
)

var ErrAccountInactive = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusUnauthorized,
)

var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email before logging in",
	http.StatusForbidden,
)

var ErrPasswordNotSet = New(
	CodeUnauthorized,
	"auth",
	"Please set your password first using the link sent to your email",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Profiles ---

var ErrClientProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Client profile not found",
	http.StatusNotFound,
)

var ErrTalentProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Talent profile not found",
	http.StatusNotFound,
)

var ErrTalentNotApproved = New(
	CodeInvalidStatus,
	"talent",
	"This talent is not yet approved",
	http.StatusConflict,
)

// --- Requests ---

var ErrRequestAlreadyResolved = New(
	CodeConflict,
	"request",
	"This request has already been responded to",
	http.StatusConflict,
)

var ErrRequestNotAccepted = New(
	CodeConflict,
	"request",
	"Can only create ads for accepted requests",
	http.StatusConflict,
)

// --- Payments ---

var ErrInvalidPaymentAmount = New(
	CodeValidationFailed,
	"payment",
	"Invalid payment amount",
	http.StatusBadRequest,
)

var ErrPaymentNotSuccessful = New(
	CodeConflict,
	"payment",
	"Payment must be successful before creating ad",
	http.StatusConflict,
)

var ErrPaymentAlreadyUsed = New(
	CodeConflict,
	"payment",
	"This payment has already been used for an ad",
	http.StatusConflict,
)

var ErrPaymentNotRefundable = New(
	CodeConflict,
	"payment",
	"Only successful payments can be refunded",
	http.StatusConflict,
)

// --- ARCON review ---

var ErrInvalidReviewDecision = New(
	CodeValidationFailed,
	"arcon",
	"Invalid decision",
	http.StatusBadRequest,
)

var ErrRejectionReasonRequired = New(
	CodeValidationFailed,
	"arcon",
	"Rejection reason is required when rejecting",
	http.StatusBadRequest,
)

var ErrDocumentNotAvailable = New(
	CodeNotFound,
	"arcon",
	"Document not available",
	http.StatusNotFound,
)
