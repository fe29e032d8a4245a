package http

import (
	"net/http"
	"strings"

	mw "edulend-backend/internal/adapter/middleware"
	"edulend-backend/internal/infrastructure/storage"
	docuc "edulend-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 10 << 20 // 10MB

// allowedUploadTypes mirrors the accepted document formats.
var allowedUploadTypes = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "pdf": true, "doc": true, "docx": true,
}

type DocumentHandler struct {
	uc    *docuc.Usecase
	store *storage.LocalStore
}

func NewDocumentHandler(uc *docuc.Usecase, store *storage.LocalStore) *DocumentHandler {
	return &DocumentHandler{uc: uc, store: store}
}

func allowedUpload(fileName, mimeType string) bool {
	ext := strings.TrimPrefix(strings.ToLower(fileName[strings.LastIndex(fileName, ".")+1:]), ".")
	if !allowedUploadTypes[ext] {
		return false
	}
	// the declared mime must agree with the extension family
	if i := strings.LastIndex(mimeType, "/"); i >= 0 {
		sub := strings.ToLower(mimeType[i+1:])
		for t := range allowedUploadTypes {
			if strings.HasSuffix(sub, t) {
				return true
			}
		}
		return false
	}
	return false
}

func (h *DocumentHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), c.Param("id"), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, res, "")
}

func (h *DocumentHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file exceeds the 10MB limit"})
	}
	mimeType := fh.Header.Get("Content-Type")
	if !allowedUpload(fh.Filename, mimeType) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type. Allowed: jpg, jpeg, png, pdf, doc, docx"})
	}

	docType := c.FormValue("docType")
	if docType == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "docType is required"})
	}
	docName := c.FormValue("docName")
	if docName == "" {
		docName = fh.Filename
	}

	src, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer src.Close()

	stored, err := h.store.Save(src, fh.Filename)
	if err != nil {
		return fail(c, err)
	}

	doc, err := h.uc.Upload(c.Request().Context(), c.Param("id"), mw.UserID(c), docuc.UploadInput{
		DocType:  docType,
		DocName:  docName,
		FileName: stored.FileName,
		FilePath: stored.Path,
		FileSize: stored.Size,
		MimeType: mimeType,
	})
	if err != nil {
		// the row never landed, so the stored file must not linger
		_ = h.store.Remove(stored.Path)
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, doc, "Document uploaded successfully")
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	oldPath, err := h.uc.Delete(c.Request().Context(), c.Param("documentId"), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	_ = h.store.Remove(oldPath)
	return ok(c, http.StatusOK, nil, "Document deleted successfully")
}
