package model

type RSVPEntry struct {
	DTO
	Name                string  `gorm:"not null" json:"name"`
	WillAttend          string  `gorm:"not null" json:"willAttend"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	NumberOfGuests      int     `gorm:"default:1" json:"numberOfGuests"`
	DietaryRequirements *string `json:"dietaryRequirements"`
	SongRequest         *string `json:"songRequest"`
	Message             *string `json:"message"`
	InvitationCode      *string `gorm:"type:varchar(8)" json:"invitationCode"`
}

type RSVPEntries []RSVPEntry

type SubmitRSVPInput struct {
	Name                string  `validate:"required" json:"name"`
	WillAttend          string  `validate:"required,oneof=yes no" json:"willAttend"`
	Email               *string `validate:"omitempty,email" json:"email"`
	Phone               *string `json:"phone"`
	NumberOfGuests      int     `validate:"omitempty,min=1" json:"numberOfGuests"`
	DietaryRequirements *string `json:"dietaryRequirements"`
	SongRequest         *string `json:"songRequest"`
	Message             *string `json:"message"`
	InvitationCode      *string `json:"invitationCode"`
}

type FilterRSVP struct {
	Pagination
	SearchKey  string  `json:"searchKey"`
	WillAttend *string `json:"willAttend"`
}

type RSVPStatistic struct {
	TotalResponses int64   `json:"totalResponses"`
	Attending      int64   `json:"attending"`
	NotAttending   int64   `json:"notAttending"`
	TotalSeats     int64   `json:"totalSeats"`
	InvitedGuests  int64   `json:"invitedGuests"`
	ResponseRate   float64 `json:"responseRate"`
}
