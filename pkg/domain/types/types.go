package types

// Version is the application version
var Version = "0.1.0"

const (
	// BaseLabel is attached to every validated pull request
	BaseLabel = "course_automation"

	// StatusContext identifies this check in the commit status list
	StatusContext = "Check mandatory part(s)"

	// SuccessComment is posted when validation passes. The wording is kept
	// as-is from the original course bot so tooling keyed on it keeps working.
	SuccessComment = "All mandatory parts where found. Awaiting TA for final judgement."

	// StatusDescriptionSuccess and StatusDescriptionFailure describe the
	// commit status outcome
	StatusDescriptionSuccess = "Validation successful"
	StatusDescriptionFailure = "Validation failed"
)
