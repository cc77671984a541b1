package handler

import (
	"errors"
	"log"
	"wedding_rsvp/config"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadGuests validates a guest spreadsheet and assigns invitation codes.
// The batch is all-or-nothing: any row error rejects the whole upload. On
// success the validated, coded records are returned to the admin UI, which
// persists them one by one through the create endpoint.
func UploadGuests(c *fiber.Ctx) error {
	data, ok := c.Locals("fileData").([]byte)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	rows, err := utils.ParseWorkbook(data)
	if err != nil {
		log.Printf("guest upload: parse failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PROCESS_FILE, err)
	}
	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_EMPTY_FILE, errors.New("no data rows"))
	}

	result := helper.ValidateGuestRows(rows)
	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Validation failed",
			"errors":         result.Errors,
			"processedCount": result.Processed,
			"totalRows":      result.TotalRows,
		})
	}

	// Codes are checked against this batch only unless the stronger mode is
	// enabled; duplicates against earlier batches are possible by default.
	existing := make(map[string]bool)
	if config.Config("IMPORT_CHECK_DB_CODES") == "true" {
		existing, err = helper.LoadExistingCodes(database.DB)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	guests := helper.AssignInvitationCodes(result.Records, existing)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": model.GuestUploadData{
			Guests:         guests,
			TotalProcessed: len(guests),
		},
	})
}
