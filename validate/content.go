package validate

import (
	"errors"
	"strconv"
	"time"
	"wedding_rsvp/constants"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func parseEventTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}

func CreateScheduleEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScheduleEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		start, err := parseEventTime(input.StartTime)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "startTime must be RFC3339", err, "startTime")
		}
		var end *time.Time
		if input.EndTime != nil {
			e, err := parseEventTime(*input.EndTime)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "endTime must be RFC3339", err, "endTime")
			}
			if e.Before(start) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "endTime must not be before startTime", nil, "endTime")
			}
			end = &e
		}

		c.Locals("createInput", model.ScheduleEvent{
			Title:       input.Title,
			StartTime:   start,
			EndTime:     end,
			Venue:       input.Venue,
			Description: input.Description,
			SortOrder:   input.SortOrder,
		})
		return c.Next()
	}
}

func UpdateScheduleEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateScheduleEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		var start, end *time.Time
		if input.StartTime != nil {
			t, err := parseEventTime(*input.StartTime)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "startTime must be RFC3339", err, "startTime")
			}
			start = &t
		}
		if input.EndTime != nil {
			t, err := parseEventTime(*input.EndTime)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "endTime must be RFC3339", err, "endTime")
			}
			end = &t
		}

		c.Locals("eventId", valueKey)
		c.Locals("updateInput", struct {
			Title       *string
			StartTime   *time.Time
			EndTime     *time.Time
			Venue       *string
			Description *string
			SortOrder   *int
		}{
			Title:       input.Title,
			StartTime:   start,
			EndTime:     end,
			Venue:       input.Venue,
			Description: input.Description,
			SortOrder:   input.SortOrder,
		})
		return c.Next()
	}
}

func CreateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateLocationInput
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

func UpdateLocation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateLocationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("locationId", valueKey)
		c.Locals("updateInput", input)
		return c.Next()
	}
}

func CreateAttire() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAttireInput
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

func UpdateAttire(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateAttireInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("attireId", valueKey)
		c.Locals("updateInput", input)
		return c.Next()
	}
}

func EditWeddingInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditWeddingInfoInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		var weddingDate, rsvpDeadline *time.Time
		if input.WeddingDate != nil {
			t, err := time.Parse("2006-01-02", *input.WeddingDate)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "weddingDate must be YYYY-MM-DD", err, "weddingDate")
			}
			weddingDate = &t
		}
		if input.RSVPDeadline != nil {
			t, err := time.Parse("2006-01-02", *input.RSVPDeadline)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "rsvpDeadline must be YYYY-MM-DD", err, "rsvpDeadline")
			}
			rsvpDeadline = &t
		}

		c.Locals("updateInput", struct {
			BrideName    *string
			GroomName    *string
			WeddingDate  *time.Time
			Tagline      *string
			HeroImageUrl *string
			RSVPDeadline *time.Time
		}{
			BrideName:    input.BrideName,
			GroomName:    input.GroomName,
			WeddingDate:  weddingDate,
			Tagline:      input.Tagline,
			HeroImageUrl: input.HeroImageUrl,
			RSVPDeadline: rsvpDeadline,
		})
		return c.Next()
	}
}
