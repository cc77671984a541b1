package model

type GuestInvitation struct {
	DTO
	InvitationCode string  `gorm:"type:varchar(8);unique;not null" json:"invitationCode"`
	Name           string  `gorm:"not null" json:"name"`
	Email          *string `json:"email"`
	AllocatedSeats int     `gorm:"not null;default:1" json:"allocatedSeats"`
	Notes          *string `json:"notes"`
}

type GuestInvitations []GuestInvitation

type CreateGuestInput struct {
	Name           string  `validate:"required" json:"name"`
	Email          *string `validate:"omitempty,email" json:"email"`
	AllocatedSeats int     `validate:"required,min=1" json:"allocatedSeats"`
	Notes          *string `json:"notes"`
}

type EditGuestInput struct {
	Name           *string `json:"name"`
	Email          *string `validate:"omitempty,email" json:"email"`
	AllocatedSeats *int    `validate:"omitempty,min=1" json:"allocatedSeats"`
	Notes          *string `json:"notes"`
}

type FilterGuest struct {
	Pagination
	SearchKey string `json:"searchKey"`
}

// GuestRecord is a validated spreadsheet row before a code is assigned.
type GuestRecord struct {
	Name           string  `json:"name"`
	Email          *string `json:"email"`
	AllocatedSeats int     `json:"allocatedSeats"`
	Notes          *string `json:"notes"`
	InvitationCode string  `json:"invitationCode"`
}

type GuestUploadData struct {
	Guests         []GuestRecord `json:"guests"`
	TotalProcessed int           `json:"totalProcessed"`
	Errors         []string      `json:"errors,omitempty"`
}
