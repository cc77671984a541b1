package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"wedding_rsvp/constants"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// checkSide enforces the category/side pairing: parents are bride/groom
// side, sponsors are male/female, everyone else may use any side.
func checkSide(category, side string) error {
	allowed, ok := constants.AllowedSides[category]
	if !ok {
		return fmt.Errorf("category must be one of: parents, sponsors, other")
	}
	for _, s := range allowed {
		if s == side {
			return nil
		}
	}
	return fmt.Errorf("side for category '%s' must be one of: %s", category, strings.Join(allowed, ", "))
}

func CreateEntourage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEntourageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		input.Category = strings.ToLower(strings.TrimSpace(input.Category))
		if input.Category == "" {
			input.Category = constants.CategoryOther
		}
		input.Side = strings.ToLower(strings.TrimSpace(input.Side))
		if err := checkSide(input.Category, input.Side); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), nil, "side")
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditEntourage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditEntourageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if input.Category != nil {
			lowered := strings.ToLower(strings.TrimSpace(*input.Category))
			input.Category = &lowered
		}
		if input.Side != nil {
			lowered := strings.ToLower(strings.TrimSpace(*input.Side))
			input.Side = &lowered
		}

		c.Locals("entourageId", valueKey)
		c.Locals("updateInput", input)
		return c.Next()
	}
}
