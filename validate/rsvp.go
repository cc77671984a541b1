package validate

import (
	"strings"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func SubmitRSVP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitRSVPInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Name is required", nil, "name")
		}
		if input.NumberOfGuests < 1 {
			input.NumberOfGuests = 1
		}

		// An invitation code is optional, but a present one must resolve.
		if input.InvitationCode != nil {
			code := strings.ToUpper(strings.TrimSpace(*input.InvitationCode))
			if code == "" {
				input.InvitationCode = nil
			} else {
				var guest model.GuestInvitation
				if err := database.DB.Where("invitation_code = ?", code).First(&guest).Error; err != nil {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid invitation code", nil, "invitationCode")
				}
				input.InvitationCode = &code
			}
		}

		c.Locals("rsvpInput", input)
		return c.Next()
	}
}
