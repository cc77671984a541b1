package validate

import (
	"wedding_rsvp/constants"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func AdminChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminChangePassword
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if len(input.NewPassword) < 8 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Password must be at least 8 characters", nil, "newPassword")
		}
		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", nil, "repeatPassword")
		}

		c.Locals("changePasswordInput", input)
		return c.Next()
	}
}
