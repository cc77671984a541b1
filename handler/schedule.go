package handler

import (
	"errors"
	"time"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func GetSchedule(c *fiber.Ctx) error {
	var events []model.ScheduleEvent
	if err := database.DB.Order("sort_order, start_time").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list schedule", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, events)
}

func CreateScheduleEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.ScheduleEvent)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create schedule event", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func UpdateScheduleEvent(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(int)

	var event model.ScheduleEvent
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Schedule event not found", err)
	}

	input := c.Locals("updateInput").(struct {
		Title       *string
		StartTime   *time.Time
		EndTime     *time.Time
		Venue       *string
		Description *string
		SortOrder   *int
	})

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = input.EndTime
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.SortOrder != nil {
		event.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update schedule event", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func DeleteScheduleEvent(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	result := database.DB.Delete(&model.ScheduleEvent{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete schedule events", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Schedule events deleted",
		"count":   result.RowsAffected,
	})
}
