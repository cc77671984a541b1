package constants

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Incorrect password"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	ERROR_PROCESS_FILE         = "Failed to process file"
	ERROR_EMPTY_FILE           = "Uploaded file is empty"
	ERROR_FILE_TYPE            = "Only .xlsx and .xls files are supported"
)

const (
	ROLE_ADMIN = "ADMIN"
)

// Invitation codes: 8 chars drawn from A-Z0-9.
const (
	InvitationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	InvitationCodeLength   = 8
)

// Entourage categories.
const (
	CategoryParents  = "parents"
	CategorySponsors = "sponsors"
	CategoryOther    = "other"
)

// Entourage sides.
const (
	SideBride  = "bride"
	SideGroom  = "groom"
	SideMale   = "male"
	SideFemale = "female"
	SideBoth   = "both"
)

// AllowedSides maps a category to the sides it accepts.
var AllowedSides = map[string][]string{
	CategoryParents:  {SideBride, SideGroom},
	CategorySponsors: {SideMale, SideFemale},
	CategoryOther:    {SideBride, SideGroom, SideMale, SideFemale, SideBoth},
}

// RSVP answers.
const (
	AttendYes = "yes"
	AttendNo  = "no"
)

// Location types.
const (
	LocationCeremony  = "ceremony"
	LocationReception = "reception"
)
