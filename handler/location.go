package handler

import (
	"errors"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetLocations(c *fiber.Ctx) error {
	var locations []model.Location
	if err := database.DB.Order("type, id").Find(&locations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list locations", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, locations)
}

func GetLocationBySlug(c *fiber.Ctx) error {
	var location model.Location
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Location not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

func CreateLocation(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateLocationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	location := model.Location{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueLocationSlug(database.DB, input.Name),
		Address:     input.Address,
		MapUrl:      input.MapUrl,
		Type:        input.Type,
		Description: input.Description,
	}

	if err := database.DB.Create(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create location", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, location)
}

func UpdateLocation(c *fiber.Ctx) error {
	locationId := c.Locals("locationId").(int)
	input := c.Locals("updateInput").(model.UpdateLocationInput)

	var location model.Location
	if err := database.DB.First(&location, locationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Location not found", err)
	}

	if input.Name != nil && *input.Name != location.Name {
		location.Name = *input.Name
		location.Slug = helper.GenerateUniqueLocationSlug(database.DB, *input.Name)
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.MapUrl != nil {
		location.MapUrl = *input.MapUrl
	}
	if input.Type != nil {
		location.Type = *input.Type
	}
	if input.Description != nil {
		location.Description = *input.Description
	}

	if err := database.DB.Save(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update location", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

func DeleteLocation(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	result := database.DB.Delete(&model.Location{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete locations", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Locations deleted",
		"count":   result.RowsAffected,
	})
}
