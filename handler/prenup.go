package handler

import (
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

func GetPrenupPhotos(c *fiber.Ctx) error {
	var photos []model.PrenupPhoto
	if err := database.DB.Order("sort_order, id").Find(&photos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list prenup photos", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, photos)
}

// CreatePrenupPhoto persists a photo already uploaded to Cloudinary by the
// validate middleware.
func CreatePrenupPhoto(c *fiber.Ctx) error {
	photo := model.PrenupPhoto{
		Url:       c.Locals("photoUrl").(string),
		PublicId:  c.Locals("photoPublicId").(string),
		Caption:   c.Locals("photoCaption").(string),
		SortOrder: c.Locals("photoSortOrder").(int),
	}

	if err := database.DB.Create(&photo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save prenup photo", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, photo)
}

func UpdatePrenupPhoto(c *fiber.Ctx) error {
	photoId := c.Locals("photoId").(int)
	input := c.Locals("updateInput").(struct {
		Caption   *string
		SortOrder *int
	})

	var photo model.PrenupPhoto
	if err := database.DB.First(&photo, photoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Prenup photo not found", err)
	}

	if input.Caption != nil {
		photo.Caption = *input.Caption
	}
	if input.SortOrder != nil {
		photo.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&photo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update prenup photo", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, photo)
}

// DeletePrenupPhoto removes the rows and their Cloudinary assets.
func DeletePrenupPhoto(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	var photos []model.PrenupPhoto
	if err := database.DB.Find(&photos, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load prenup photos", err)
	}

	cld := helper.InitCloudinary()
	for _, photo := range photos {
		publicID := photo.PublicId
		if publicID == "" {
			publicID = helper.ExtractPublicID(photo.Url)
		}
		if publicID == "" {
			continue
		}
		if _, err := cld.Upload.Destroy(c.Context(), uploader.DestroyParams{PublicID: publicID}); err != nil {
			// keep going; the row is the source of truth
			continue
		}
	}

	result := database.DB.Delete(&model.PrenupPhoto{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete prenup photos", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Prenup photos deleted",
		"count":   result.RowsAffected,
	})
}
