package model

import "time"

type WeddingInfo struct {
	DTO
	BrideName    string     `gorm:"not null" json:"brideName"`
	GroomName    string     `gorm:"not null" json:"groomName"`
	WeddingDate  time.Time  `json:"weddingDate"`
	Tagline      *string    `json:"tagline"`
	HeroImageUrl *string    `json:"heroImageUrl"`
	RSVPDeadline *time.Time `json:"rsvpDeadline"`
}

type EditWeddingInfoInput struct {
	BrideName    *string `json:"brideName"`
	GroomName    *string `json:"groomName"`
	WeddingDate  *string `json:"weddingDate"`
	Tagline      *string `json:"tagline"`
	HeroImageUrl *string `json:"heroImageUrl"`
	RSVPDeadline *string `json:"rsvpDeadline"`
}

type ScheduleEvent struct {
	DTO
	Title       string     `gorm:"not null" json:"title"`
	StartTime   time.Time  `gorm:"not null" json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Venue       string     `json:"venue"`
	Description string     `json:"description"`
	SortOrder   int        `gorm:"default:0" json:"sortOrder"`
}

type CreateScheduleEventInput struct {
	Title       string  `validate:"required" json:"title"`
	StartTime   string  `validate:"required" json:"startTime"`
	EndTime     *string `json:"endTime"`
	Venue       string  `json:"venue"`
	Description string  `json:"description"`
	SortOrder   int     `json:"sortOrder"`
}

type UpdateScheduleEventInput struct {
	Title       *string `json:"title"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Venue       *string `json:"venue"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sortOrder"`
}

type Location struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Address     string `gorm:"not null" json:"address"`
	MapUrl      string `json:"mapUrl"`
	Type        string `gorm:"not null" json:"type"`
	Description string `json:"description"`
}

type CreateLocationInput struct {
	Name        string `validate:"required" json:"name"`
	Address     string `validate:"required" json:"address"`
	MapUrl      string `validate:"omitempty,url" json:"mapUrl"`
	Type        string `validate:"required,oneof=ceremony reception" json:"type"`
	Description string `json:"description"`
}

type UpdateLocationInput struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	MapUrl      *string `validate:"omitempty,url" json:"mapUrl"`
	Type        *string `validate:"omitempty,oneof=ceremony reception" json:"type"`
	Description *string `json:"description"`
}

type AttireInfo struct {
	DTO
	Audience    string `gorm:"not null" json:"audience"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Colors      string `json:"colors"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

type CreateAttireInput struct {
	Audience    string `validate:"required" json:"audience"`
	Title       string `validate:"required" json:"title"`
	Description string `json:"description"`
	Colors      string `json:"colors"`
	SortOrder   int    `json:"sortOrder"`
}

type UpdateAttireInput struct {
	Audience    *string `json:"audience"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Colors      *string `json:"colors"`
	SortOrder   *int    `json:"sortOrder"`
}

type PrenupPhoto struct {
	DTO
	Url       string `gorm:"not null" json:"url"`
	PublicId  string `gorm:"not null" json:"publicId"`
	Caption   string `json:"caption"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}
