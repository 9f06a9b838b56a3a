package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"orpheo-api/app/server/constants"
	"orpheo-api/app/server/gen/oapi/api"
	"orpheo-api/app/server/metrics"
	"orpheo-api/app/server/middlewares"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/storage"
	"orpheo-api/app/server/store"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgDocumentNotFound  = "document not found"
	msgDocumentForbidden = "your grade does not allow access to this document"
)

func (a *App) DocumentList(c echo.Context, params api.DocumentListParams) error {
	rctx := c.Request().Context()
	identity := middlewares.IdentityOf(c)

	categories := identity.Grade.Accessible()
	if raw := params.Category; raw != nil && *raw != "" && *raw != "all" {
		category := models.Grade(*raw)
		if !category.Valid() {
			return a.erm(c, http.StatusBadRequest, "invalid category")
		}
		if !identity.Grade.CanAccess(category) {
			return a.erm(c, http.StatusForbidden, msgDocumentForbidden)
		}
		categories = []models.Grade{category}
	}

	page, limit := a.parsePagination(params.Page, params.Limit)

	documents, count, err := a.store.ListDocuments(rctx, categories, page)
	if err != nil {
		a.l.Error("failed to get document list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	list := make([]documentInfo, 0, len(documents))
	for i := range documents {
		list = append(list, toDocumentInfo(&documents[i]))
	}

	return c.JSON(http.StatusOK, &listResponse[documentInfo]{
		Limit:   limit,
		PageMax: a.calcMaxPage(count, limit),
		Total:   count,
		List:    list,
	})
}

func splitKeywords(raw string) []string {
	keywords := []string{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

func (a *App) DocumentUpload(c echo.Context) error {
	rctx := c.Request().Context()
	identity := middlewares.IdentityOf(c)

	fh, err := c.FormFile("file")
	if err != nil {
		a.metrics.Upload(metrics.OutcomeRejected)
		return a.erm(c, http.StatusBadRequest, "file is required")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mimeType, allowed := constants.DocumentAllowedExtensions[ext]
	if !allowed {
		a.metrics.Upload(metrics.OutcomeRejected)
		return a.erm(c, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", ext))
	}
	if fh.Size > a.maxUpload {
		a.metrics.Upload(metrics.OutcomeRejected)
		return a.erm(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", a.maxUpload))
	}

	category := models.GradeApprentice
	if raw := c.FormValue("category"); raw != "" {
		category = models.Grade(raw)
		if !category.Valid() {
			a.metrics.Upload(metrics.OutcomeRejected)
			return a.erm(c, http.StatusBadRequest, "invalid category")
		}
	}

	var authorID *uint
	if raw := c.FormValue("author"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			a.metrics.Upload(metrics.OutcomeRejected)
			return a.erm(c, http.StatusBadRequest, "invalid author")
		}
		author := uint(id)
		authorID = &author
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		name = strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	}
	docType := strings.TrimSpace(c.FormValue("type"))
	if docType == "" {
		docType = strings.TrimPrefix(ext, ".")
	}

	src, err := fh.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		a.metrics.Upload(metrics.OutcomeFailed)
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	key := storage.NewDocumentKey(time.Now(), ext)
	if err := a.storage.Put(rctx, key, src, fh.Size, mimeType); err != nil {
		a.l.Error("failed to store document", zap.String("key", key), zap.Error(err))
		a.metrics.Upload(metrics.OutcomeFailed)
		return a.er(c, http.StatusInternalServerError)
	}

	document := models.Document{
		Name:             name,
		Type:             docType,
		Description:      c.FormValue("description"),
		Category:         category,
		Keywords:         splitKeywords(c.FormValue("keywords")),
		AuthorID:         authorID,
		UploadedByID:     identity.ID,
		StorageKey:       key,
		OriginalFilename: filepath.Base(fh.Filename),
		MimeType:         mimeType,
		Size:             fh.Size,
	}
	if err := a.store.CreateDocument(rctx, &document); err != nil {
		// The object is useless without its record
		if rmErr := a.storage.Remove(rctx, key); rmErr != nil {
			a.l.Error("failed to remove orphaned document", zap.String("key", key), zap.Error(rmErr))
		}
		if errors.Is(err, store.ErrInUse) {
			a.metrics.Upload(metrics.OutcomeRejected)
			return a.erm(c, http.StatusBadRequest, "author does not exist")
		}
		a.l.Error("failed to create document", zap.Error(err))
		a.metrics.Upload(metrics.OutcomeFailed)
		return a.er(c, http.StatusInternalServerError)
	}

	a.metrics.Upload(metrics.OutcomeSuccess)
	return c.JSON(http.StatusCreated, toDocumentInfo(&document))
}

func (a *App) DocumentDownload(c echo.Context, id uint) error {
	rctx := c.Request().Context()
	identity := middlewares.IdentityOf(c)

	if id == 0 {
		return a.er(c, http.StatusBadRequest)
	}

	document, err := a.store.DocumentByID(rctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.erm(c, http.StatusNotFound, msgDocumentNotFound)
		}
		a.l.Error("failed to get document", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if !identity.Grade.CanAccess(document.Category) {
		return a.erm(c, http.StatusForbidden, msgDocumentForbidden)
	}

	obj, err := a.storage.Open(rctx, document.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.l.Warn("document file is missing", zap.Uint("id", id), zap.String("key", document.StorageKey))
			return a.erm(c, http.StatusNotFound, msgDocumentNotFound)
		}
		a.l.Error("failed to open document", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer obj.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", document.OriginalFilename))
	return c.Stream(http.StatusOK, document.MimeType, obj)
}

func (a *App) DocumentDelete(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	if id == 0 {
		return a.er(c, http.StatusBadRequest)
	}

	document, err := a.store.DocumentByID(rctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.erm(c, http.StatusNotFound, msgDocumentNotFound)
		}
		a.l.Error("failed to get document", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.store.DeleteDocument(rctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.erm(c, http.StatusNotFound, msgDocumentNotFound)
		}
		a.l.Error("failed to delete document", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.storage.Remove(rctx, document.StorageKey); err != nil {
		a.l.Error("failed to remove document file", zap.Uint("id", id), zap.String("key", document.StorageKey), zap.Error(err))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "document deleted"})
}
