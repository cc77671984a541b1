package handler

import (
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// ExportGuests streams the full guest list as a workbook download.
func ExportGuests(c *fiber.Ctx) error {
	var guests []model.GuestInvitation
	if err := database.DB.Order("name").Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load guests", err)
	}

	buf, err := utils.BuildGuestWorkbook(guests)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build workbook", err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="guests.xlsx"`)
	return c.Send(buf.Bytes())
}

// ExportRSVPs streams every RSVP entry as a workbook download.
func ExportRSVPs(c *fiber.Ctx) error {
	var entries []model.RSVPEntry
	if err := database.DB.Order("created_at").Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load RSVPs", err)
	}

	buf, err := utils.BuildRSVPWorkbook(entries)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build workbook", err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="rsvps.xlsx"`)
	return c.Send(buf.Bytes())
}
