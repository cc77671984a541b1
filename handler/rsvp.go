package handler

import (
	"errors"
	"strings"
	"time"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitRSVP is the public submission endpoint. Every submission creates a
// new entry; repeat submissions are not deduplicated.
func SubmitRSVP(c *fiber.Ctx) error {
	input, ok := c.Locals("rsvpInput").(model.SubmitRSVPInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var info model.WeddingInfo
	if err := database.DB.First(&info).Error; err == nil {
		if info.RSVPDeadline != nil && time.Now().After(*info.RSVPDeadline) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "The RSVP deadline has passed", nil)
		}
	}

	entry := model.RSVPEntry{
		Name:                input.Name,
		WillAttend:          input.WillAttend,
		Email:               input.Email,
		Phone:               input.Phone,
		NumberOfGuests:      input.NumberOfGuests,
		DietaryRequirements: input.DietaryRequirements,
		SongRequest:         input.SongRequest,
		Message:             input.Message,
		InvitationCode:      input.InvitationCode,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save RSVP", err)
	}

	if entry.Email != nil && *entry.Email != "" {
		data := utils.RSVPConfirmationData{
			GuestName:      entry.Name,
			WillAttend:     entry.WillAttend,
			NumberOfGuests: entry.NumberOfGuests,
			BrideName:      info.BrideName,
			GroomName:      info.GroomName,
			WeddingDate:    info.WeddingDate.Format("January 2, 2006"),
		}
		utils.SendRSVPConfirmationEmail(*entry.Email, data)
	}

	PublishRSVP(entry)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Thank you for your RSVP",
		"entry":   entry,
	})
}

func GetRSVPs(c *fiber.Ctx) error {
	filter := new(model.FilterRSVP)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.RSVPEntry{})
	if filter.SearchKey != "" {
		searchPattern := "%" + strings.ToLower(filter.SearchKey) + "%"
		db = db.Where("LOWER(name) LIKE ?", searchPattern)
	}
	if filter.WillAttend != nil {
		db = db.Where("will_attend = ?", *filter.WillAttend)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var entries []model.RSVPEntry
	if err := db.Order("id DESC").Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list RSVPs", err)
	}

	response := &model.ResponseCustom{
		Rows:       entries,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// ClearRSVPs is the only delete path for RSVP entries: all or nothing.
func ClearRSVPs(c *fiber.Ctx) error {
	result := database.DB.Where("1 = 1").Delete(&model.RSVPEntry{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to clear RSVPs", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "All RSVP entries cleared",
		"count":   result.RowsAffected,
	})
}

func GetRSVPStatistic(c *fiber.Ctx) error {
	db := database.DB
	var stat model.RSVPStatistic

	db.Model(&model.RSVPEntry{}).Count(&stat.TotalResponses)
	db.Model(&model.RSVPEntry{}).Where("will_attend = ?", constants.AttendYes).Count(&stat.Attending)
	db.Model(&model.RSVPEntry{}).Where("will_attend = ?", constants.AttendNo).Count(&stat.NotAttending)
	db.Model(&model.RSVPEntry{}).
		Where("will_attend = ?", constants.AttendYes).
		Select("COALESCE(SUM(number_of_guests), 0)").
		Scan(&stat.TotalSeats)
	db.Model(&model.GuestInvitation{}).Count(&stat.InvitedGuests)

	if stat.InvitedGuests > 0 {
		var responded int64
		db.Model(&model.RSVPEntry{}).
			Where("invitation_code IS NOT NULL").
			Distinct("invitation_code").
			Count(&responded)
		stat.ResponseRate = float64(responded) / float64(stat.InvitedGuests) * 100
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stat)
}
