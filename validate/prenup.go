package validate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"wedding_rsvp/constants"
	"wedding_rsvp/helper"
	"wedding_rsvp/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadPrenupPhoto uploads the form image to Cloudinary and hands the
// resulting URL and public ID to the create handler.
func UploadPrenupPhoto() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("photo")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No photo uploaded", err)
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".webp" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG, JPEG and WEBP are supported", nil, "photo")
		}

		f, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read photo", err)
		}
		defer f.Close()

		cld := helper.InitCloudinary()
		publicID := fmt.Sprintf("prenup_%s_%d", uuid.NewString()[:8], time.Now().Unix())
		uploadResult, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
			Folder:       "prenup",
			PublicID:     publicID,
			ResourceType: "image",
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cloudinary upload failed", err)
		}

		sortOrder, _ := strconv.Atoi(c.FormValue("sortOrder", "0"))

		c.Locals("photoUrl", uploadResult.SecureURL)
		c.Locals("photoPublicId", uploadResult.PublicID)
		c.Locals("photoCaption", strings.TrimSpace(c.FormValue("caption")))
		c.Locals("photoSortOrder", sortOrder)
		return c.Next()
	}
}

func UpdatePrenupPhoto(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input struct {
			Caption   *string `json:"caption"`
			SortOrder *int    `json:"sortOrder"`
		}
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("photoId", valueKey)
		c.Locals("updateInput", struct {
			Caption   *string
			SortOrder *int
		}{Caption: input.Caption, SortOrder: input.SortOrder})
		return c.Next()
	}
}
