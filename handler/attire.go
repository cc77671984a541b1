package handler

import (
	"errors"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAttire(c *fiber.Ctx) error {
	var items []model.AttireInfo
	if err := database.DB.Order("sort_order, id").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list attire info", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateAttire(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateAttireInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	item := model.AttireInfo{
		Audience:    input.Audience,
		Title:       input.Title,
		Description: input.Description,
		Colors:      input.Colors,
		SortOrder:   input.SortOrder,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create attire info", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateAttire(c *fiber.Ctx) error {
	attireId := c.Locals("attireId").(int)
	input := c.Locals("updateInput").(model.UpdateAttireInput)

	var item model.AttireInfo
	if err := database.DB.First(&item, attireId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Attire info not found", err)
	}

	if input.Audience != nil {
		item.Audience = *input.Audience
	}
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Colors != nil {
		item.Colors = *input.Colors
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update attire info", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteAttire(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	result := database.DB.Delete(&model.AttireInfo{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete attire info", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Attire info deleted",
		"count":   result.RowsAffected,
	})
}
