package response

// ErrCode identifies an API error independent of its message.
type ErrCode string

const (
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrNotFound       ErrCode = "NOT_FOUND"

	ErrSessionUnavailable ErrCode = "SESSION_UNAVAILABLE"
	ErrNothingToReview    ErrCode = "NOTHING_TO_REVIEW"

	ErrInternal ErrCode = "INTERNAL_ERROR"
)

func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrSessionUnavailable:
		return "Could not start a study session."
	case ErrNothingToReview:
		return "There are no incorrect answers to review."
	case ErrInternal:
		return "Internal server error."
	default:
		return "Unexpected error."
	}
}
