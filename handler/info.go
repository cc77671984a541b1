package handler

import (
	"time"
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// GetWeddingInfo backs the public hero section.
func GetWeddingInfo(c *fiber.Ctx) error {
	var info model.WeddingInfo
	if err := database.DB.First(&info).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Wedding info not configured", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, info)
}

func EditWeddingInfo(c *fiber.Ctx) error {
	var info model.WeddingInfo
	if err := database.DB.First(&info).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Wedding info not configured", err)
	}

	input := c.Locals("updateInput").(struct {
		BrideName    *string
		GroomName    *string
		WeddingDate  *time.Time
		Tagline      *string
		HeroImageUrl *string
		RSVPDeadline *time.Time
	})

	if input.BrideName != nil {
		info.BrideName = *input.BrideName
	}
	if input.GroomName != nil {
		info.GroomName = *input.GroomName
	}
	if input.WeddingDate != nil {
		info.WeddingDate = *input.WeddingDate
	}
	if input.Tagline != nil {
		info.Tagline = input.Tagline
	}
	if input.HeroImageUrl != nil {
		info.HeroImageUrl = input.HeroImageUrl
	}
	if input.RSVPDeadline != nil {
		info.RSVPDeadline = input.RSVPDeadline
	}

	if err := database.DB.Save(&info).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update wedding info", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, info)
}
