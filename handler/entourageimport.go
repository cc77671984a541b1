package handler

import (
	"errors"
	"fmt"
	"log"
	"wedding_rsvp/constants"
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadEntourage imports an entourage spreadsheet. Validation errors reject
// the whole file, but once validation passes each row is inserted on its
// own: a failed insert is reported by member name and does not stop the
// remaining rows.
func UploadEntourage(c *fiber.Ctx) error {
	data, ok := c.Locals("fileData").([]byte)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	rows, err := utils.ParseWorkbook(data)
	if err != nil {
		log.Printf("entourage upload: parse failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PROCESS_FILE, err)
	}
	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_EMPTY_FILE, errors.New("no data rows"))
	}

	records, validationErrors := helper.ValidateEntourageRows(rows)
	if len(validationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Validation failed",
			"errors":         validationErrors,
			"processedCount": len(records),
			"totalRows":      len(rows),
		})
	}

	var insertErrors []string
	var members []model.EntourageMember
	for _, record := range records {
		member := model.EntourageMember{
			Name:        record.Name,
			Role:        record.Role,
			Category:    record.Category,
			Side:        record.Side,
			Description: record.Description,
			SortOrder:   record.SortOrder,
		}
		if err := database.DB.Create(&member).Error; err != nil {
			log.Printf("entourage upload: insert failed for %q: %v", record.Name, err)
			insertErrors = append(insertErrors, fmt.Sprintf("%s: %s", record.Name, err.Error()))
			continue
		}
		members = append(members, member)
	}

	response := fiber.Map{
		"success":        true,
		"message":        fmt.Sprintf("Imported %d of %d member(s)", len(members), len(records)),
		"insertedCount":  len(members),
		"totalProcessed": len(records),
		"members":        members,
	}
	if len(insertErrors) > 0 {
		response["errors"] = insertErrors
	}
	return c.Status(fiber.StatusOK).JSON(response)
}
