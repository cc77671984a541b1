package handler

import (
	"errors"
	"strings"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// GetEntourage is public: the wedding page renders it grouped by category.
func GetEntourage(c *fiber.Ctx) error {
	var members []model.EntourageMember
	if err := database.DB.Order("sort_order, id").Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list entourage", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

func CreateEntourage(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateEntourageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	member := model.EntourageMember{
		Name:      strings.TrimSpace(input.Name),
		Role:      strings.TrimSpace(input.Role),
		Category:  input.Category,
		Side:      input.Side,
		SortOrder: input.SortOrder,
	}
	if input.Description != nil {
		member.Description = strings.TrimSpace(*input.Description)
	}

	if err := database.DB.Create(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create entourage member", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, member)
}

func EditEntourage(c *fiber.Ctx) error {
	entourageId := c.Locals("entourageId").(int)
	input := c.Locals("updateInput").(model.EditEntourageInput)

	var member model.EntourageMember
	if err := database.DB.First(&member, entourageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Entourage member not found", err)
	}

	if input.Name != nil {
		member.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		member.Role = strings.TrimSpace(*input.Role)
	}
	if input.Category != nil {
		member.Category = *input.Category
	}
	if input.Side != nil {
		member.Side = *input.Side
	}
	if input.Description != nil {
		member.Description = strings.TrimSpace(*input.Description)
	}
	if input.SortOrder != nil {
		member.SortOrder = *input.SortOrder
	}

	// The pairing may have been broken by a partial update.
	allowed, ok := constants.AllowedSides[member.Category]
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category must be one of: parents, sponsors, other", nil, "category")
	}
	valid := false
	for _, s := range allowed {
		if s == member.Side {
			valid = true
			break
		}
	}
	if !valid {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
			"Side for category '"+member.Category+"' must be one of: "+strings.Join(allowed, ", "), nil, "side")
	}

	if err := database.DB.Save(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update entourage member", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func DeleteEntourage(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	result := database.DB.Delete(&model.EntourageMember{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete entourage members", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Entourage members deleted",
		"count":   result.RowsAffected,
	})
}
