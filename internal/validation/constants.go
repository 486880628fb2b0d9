package validation

import "regexp"

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxNameLength          = 120
	MaxDescriptionLength   = 2000
	MaxJustificationLength = 1000
	MaxMessageLength       = 5000

	// Deal limits
	MaxDealValue = 1_000_000_000
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
