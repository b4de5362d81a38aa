package handler

import (
	"errors"
	"io"
	"net/http"
	"os"

	"usersvc/internal/users/importer"
	"usersvc/internal/users/model"

	"github.com/labstack/echo/v4"
)

// UploadUsers handles POST /api/users/upload. The multipart file is
// spooled to a transient file on local disk and removed on every exit
// path, including parse failures.
func (h *UserHandler) UploadUsers(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Excel file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(h.UploadDir, "upload-*.xlsx")
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	path := tmp.Name()
	defer os.Remove(path)

	_, err = io.Copy(tmp, src)
	tmp.Close()
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	rows, err := importer.ParseFile(path)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrEmptySheet):
			return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Excel sheet is empty"})
		case errors.Is(err, importer.ErrWorkbook):
			return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Excel file is empty or corrupted"})
		}
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result := h.Service.BulkImport(c.Request().Context(), rows)
	if h.Metrics != nil {
		h.Metrics.ObserveImport(len(result.Inserted), len(result.Updated), len(result.Failed))
	}

	return c.JSON(http.StatusOK, model.UploadResponse{
		Message:       "Excel processed successfully",
		InsertedCount: len(result.Inserted),
		UpdatedCount:  len(result.Updated),
		FailedCount:   len(result.Failed),
		Failed:        result.Failed,
	})
}
