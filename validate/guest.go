package validate

import (
	"errors"
	"strconv"
	"strings"
	"wedding_rsvp/constants"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateGuestInput
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

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditGuest(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditGuestInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Name must not be blank", nil, "name")
		}

		c.Locals("guestId", valueKey)
		c.Locals("updateInput", input)
		return c.Next()
	}
}
