package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
)

// FormUpload extracts an optional file upload from a multipart form field.
// A missing or empty field returns nil; the form is simply submitted without
// a new file.
func FormUpload(c *fiber.Ctx, field string) (*storage.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil || fileHeader.Size == 0 {
		return nil, nil //nolint: nilerr
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}

	return &storage.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}, nil
}
