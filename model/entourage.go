package model

type EntourageMember struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Role        string `gorm:"not null" json:"role"`
	Category    string `gorm:"not null;default:other" json:"category"`
	Side        string `gorm:"not null" json:"side"`
	Description string `json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

type EntourageMembers []EntourageMember

type CreateEntourageInput struct {
	Name        string  `validate:"required" json:"name"`
	Role        string  `validate:"required" json:"role"`
	Category    string  `validate:"omitempty,oneof=parents sponsors other" json:"category"`
	Side        string  `validate:"required" json:"side"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sortOrder"`
}

type EditEntourageInput struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Category    *string `validate:"omitempty,oneof=parents sponsors other" json:"category"`
	Side        *string `json:"side"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sortOrder"`
}

// EntourageRecord is a validated spreadsheet row ready for insert.
type EntourageRecord struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Category    string `json:"category"`
	Side        string `json:"side"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}
