package handler

import (
	"errors"
	"strings"
	"wedding_rsvp/config"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetGuests(c *fiber.Ctx) error {
	filter := new(model.FilterGuest)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.GuestInvitation{})
	if filter.SearchKey != "" {
		searchPattern := "%" + strings.ToLower(filter.SearchKey) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(invitation_code) LIKE ?", searchPattern, searchPattern)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var guests []model.GuestInvitation
	if err := db.Order("id DESC").Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list guests", err)
	}

	response := &model.ResponseCustom{
		Rows:       guests,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetGuestById(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(int)

	var guest model.GuestInvitation
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

// GetGuestByCode resolves an invitation code for the public RSVP form.
func GetGuestByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if len(code) != constants.InvitationCodeLength {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid invitation code", errors.New("code must be 8 characters"))
	}

	var guest model.GuestInvitation
	if err := database.DB.Where("invitation_code = ?", code).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Invitation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"name":           guest.Name,
		"allocatedSeats": guest.AllocatedSeats,
		"invitationCode": guest.InvitationCode,
	})
}

func CreateGuest(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateGuestInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.LoadExistingCodes(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	guest := new(model.GuestInvitation)
	copier.Copy(guest, &input)
	guest.InvitationCode = helper.GenerateInvitationCode(existing)

	if err := database.DB.Create(guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create guest", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, guest)
}

func EditGuest(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(int)
	input := c.Locals("updateInput").(model.EditGuestInput)

	var guest model.GuestInvitation
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
	}

	// invitationCode is immutable once assigned
	if input.Name != nil {
		guest.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		guest.Email = utils.StringPtr(strings.TrimSpace(*input.Email))
	}
	if input.AllocatedSeats != nil {
		guest.AllocatedSeats = *input.AllocatedSeats
	}
	if input.Notes != nil {
		guest.Notes = utils.StringPtr(strings.TrimSpace(*input.Notes))
	}

	if err := database.DB.Save(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update guest", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func DeleteGuest(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	var guests []model.GuestInvitation
	if err := database.DB.Where("id IN ?", input.IDs).Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(guests) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No guests found for the given IDs", nil)
	}

	codes := make([]string, 0, len(guests))
	for _, g := range guests {
		codes = append(codes, g.InvitationCode)
	}

	// RSVP entries keep existing but lose the dangling reference.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.RSVPEntry{}).
			Where("invitation_code IN ?", codes).
			Update("invitation_code", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GuestInvitation{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete guests", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Guests deleted",
		"count":   len(guests),
	})
}

// GuestQRCode renders the guest's personal RSVP link as a PNG QR code.
func GuestQRCode(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(int)

	var guest model.GuestInvitation
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Guest not found", err)
	}

	base := config.ConfigDefault("PUBLIC_SITE_URL", "http://localhost:5173")
	link := base + "/rsvp?code=" + guest.InvitationCode

	png, err := utils.GenerateQRCode(link, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate QR code", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
