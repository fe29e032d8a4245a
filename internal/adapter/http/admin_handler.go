package http

import (
	"net/http"

	mw "edulend-backend/internal/adapter/middleware"
	appDomain "edulend-backend/internal/domain/application"
	appuc "edulend-backend/internal/usecase/application"
	docuc "edulend-backend/internal/usecase/document"
	reportuc "edulend-backend/internal/usecase/reporting"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	apps    *appuc.Usecase
	docs    *docuc.Usecase
	reports *reportuc.Usecase
}

func NewAdminHandler(apps *appuc.Usecase, docs *docuc.Usecase, reports *reportuc.Usecase) *AdminHandler {
	return &AdminHandler{apps: apps, docs: docs, reports: reports}
}

func (h *AdminHandler) ListAll(c echo.Context) error {
	f := appDomain.AdminFilter{
		Status:    c.QueryParam("status"),
		Stage:     c.QueryParam("stage"),
		LoanType:  c.QueryParam("loanType"),
		Bank:      c.QueryParam("bank"),
		Search:    c.QueryParam("search"),
		FromDate:  queryDate(c, "fromDate"),
		ToDate:    queryDate(c, "toDate"),
		Limit:     queryInt(c, "limit", 20),
		Offset:    queryInt(c, "offset", 0),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	apps, total, err := h.reports.List(c.Request().Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return okList(c, apps, total, f.Limit, f.Offset)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.reports.Stats(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, stats, "")
}

func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var in appuc.AdminStatusInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.apps.AdminUpdateStatus(c.Request().Context(), c.Param("id"), mw.UserID(c), mw.DisplayName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, a, "Application updated successfully")
}

func (h *AdminHandler) Documents(c echo.Context) error {
	// empty user id skips the ownership check
	res, err := h.docs.List(c.Request().Context(), c.Param("id"), "")
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, res, "")
}

func (h *AdminHandler) VerifyDocument(c echo.Context) error {
	var in docuc.VerifyInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	doc, err := h.docs.Verify(c.Request().Context(), c.Param("documentId"), mw.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, doc, "Document "+in.Status+" successfully")
}

func (h *AdminHandler) Tracking(c echo.Context) error {
	view, err := h.apps.Tracking(c.Request().Context(), c.Param("id"), "")
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, view, "")
}

func (h *AdminHandler) ListNotes(c echo.Context) error {
	notes, err := h.apps.ListNotes(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, notes, "")
}

func (h *AdminHandler) AddNote(c echo.Context) error {
	var in appuc.NoteInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	n, err := h.apps.AddNote(c.Request().Context(), c.Param("id"), mw.UserID(c), mw.DisplayName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, n, "Note added successfully")
}
