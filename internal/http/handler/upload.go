package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
)

// withUploadedFile opens the multipart "file" field and passes it to fn.
// Missing or unreadable files are answered with 400.
func withUploadedFile(c *fiber.Ctx, fn func(r io.Reader, contentType string, size int64) error) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return fn(f, ct, fh.Size)
}
