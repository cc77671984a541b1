package handler

import (
	"errors"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", errors.New("permission denied"))
	}

	var accounts []model.Account
	if err := database.DB.Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", errors.New("permission denied"))
	}

	input, ok := c.Locals("createInput").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var existing model.Account
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Username already taken", nil, "username")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hash,
		Role:     constants.ROLE_ADMIN,
		Active:   true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func AdminChangePassword(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", errors.New("permission denied"))
	}

	input, ok := c.Locals("changePasswordInput").(model.AdminChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account.Password = hash
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to change password", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
