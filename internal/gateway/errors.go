package gateway

import "fmt"

// ErrorKind classifies a failed gateway operation.
type ErrorKind int

const (
	// KindValidation is a client-local rule violation; nothing was sent.
	KindValidation ErrorKind = iota + 1
	// KindRequest is a 4xx/5xx answer from the API.
	KindRequest
	// KindConnectivity means no response was received.
	KindConnectivity
	// KindInvalidCredentials is a rejected admin login.
	KindInvalidCredentials
	// KindSessionExpired is a missing token or a 401 on an admin call.
	KindSessionExpired
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRequest:
		return "request"
	case KindConnectivity:
		return "connectivity"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindSessionExpired:
		return "session_expired"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	MsgGeneric            = "Something went wrong. Please try again."
	MsgUnreachable        = "Unable to connect to the server. Please check your connection and try again."
	MsgValidation         = "Please correct the highlighted fields."
	MsgInvalidCredentials = "Invalid admin password. Please try again."
	MsgLoginConnection    = "Connection error. Please try again."
	MsgPasswordRequired   = "Password is required."
	MsgSessionExpired     = "Session expired"
	MsgRequestFailed      = "Request failed"
)

// Error is the failure half of a Result.
type Error struct {
	Kind    ErrorKind
	Message string
	// Status is the HTTP status when a response was received.
	Status int
	// Detail is the server-reported message, if any.
	Detail string
	// Fields maps form fields to messages for KindValidation.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the Err* sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrRequest            = &Error{Kind: KindRequest}
	ErrConnectivity       = &Error{Kind: KindConnectivity}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrSessionExpired     = &Error{Kind: KindSessionExpired}
)

func validationError(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: MsgValidation, Fields: fields}
}
