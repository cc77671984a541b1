package validate

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"wedding_rsvp/constants"
	"wedding_rsvp/utils"

	"github.com/gofiber/fiber/v2"
)

// SpreadsheetUpload gates the uploaded file on extension (.xlsx/.xls only,
// no content sniffing) and stashes the raw bytes for the import handler.
func SpreadsheetUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded", err)
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".xlsx" && ext != ".xls" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_FILE_TYPE, errors.New("unsupported file extension"))
		}

		f, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PROCESS_FILE, err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PROCESS_FILE, err)
		}

		c.Locals("fileData", data)
		return c.Next()
	}
}
