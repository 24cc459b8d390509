package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrMissingCredentials = ErrorResponse{
		Status:  "error",
		Error:   "missing_credentials",
		Details: "Missing credentials",
	}

	// One collapsed body for every authentication miss. The handler
	// must not distinguish wrong code from expired from not found.
	ErrAuthenticationFailed = ErrorResponse{
		Status:  "error",
		Error:   "authentication_failed",
		Details: "Invalid credentials or gallery expired",
	}

	ErrSessionRequired = ErrorResponse{
		Status:  "error",
		Error:   "session_required",
		Details: "No active gallery session",
	}

	ErrGalleryNotFound = ErrorResponse{
		Status:  "error",
		Error:   "gallery_not_found",
		Details: "Gallery not found",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
