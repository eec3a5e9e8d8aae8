package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionExpired     ErrCode = "SESSION_EXPIRED"
	ErrSessionRequired    ErrCode = "SESSION_REQUIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidKind    ErrCode = "INVALID_KIND"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Dashboard ─────────────────────────────────────────────────────
	ErrConfirmationRequired ErrCode = "CONFIRMATION_REQUIRED"
	ErrBusy                 ErrCode = "OPERATION_IN_PROGRESS"

	// ─── Upstream ──────────────────────────────────────────────────────
	ErrUpstreamRejected    ErrCode = "UPSTREAM_REJECTED"
	ErrUpstreamUnavailable ErrCode = "UPSTREAM_UNAVAILABLE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid admin password. Please try again."
	case ErrSessionExpired:
		return "Session expired"
	case ErrSessionRequired:
		return "Please log in to continue."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Please correct the highlighted fields."
	case ErrInvalidID:
		return "Invalid record ID."
	case ErrInvalidKind:
		return "Unknown record type."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."

	// ─── Dashboard ─────────────────────────────────────────────────────
	case ErrConfirmationRequired:
		return "Please confirm the delete first."
	case ErrBusy:
		return "Another request is already in progress."

	// ─── Upstream ──────────────────────────────────────────────────────
	case ErrUpstreamRejected:
		return "Something went wrong. Please try again."
	case ErrUpstreamUnavailable:
		return "Unable to connect to the server. Please check your connection and try again."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal server error."
	default:
		return "An unexpected error occurred."
	}
}
