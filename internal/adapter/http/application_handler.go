package http

import (
	"net/http"

	mw "edulend-backend/internal/adapter/middleware"
	appDomain "edulend-backend/internal/domain/application"
	appuc "edulend-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	uc *appuc.Usecase
	// cleanup removes a stored document file; nil disables disk cleanup.
	cleanup func(path string) error
}

func NewApplicationHandler(uc *appuc.Usecase, cleanup func(path string) error) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, cleanup: cleanup}
}

// ---- public ----

func (h *ApplicationHandler) Track(c echo.Context) error {
	view, err := h.uc.Track(c.Request().Context(), c.Param("applicationNumber"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, view, "")
}

func (h *ApplicationHandler) RequiredDocuments(c echo.Context) error {
	lt := appDomain.LoanType(c.Param("loanType"))
	return ok(c, http.StatusOK, appDomain.ChecklistFor(lt), "")
}

func (h *ApplicationHandler) Stages(c echo.Context) error {
	return ok(c, http.StatusOK, appDomain.StageTable, "")
}

// ---- user ----

func (h *ApplicationHandler) Create(c echo.Context) error {
	var in appuc.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.uc.Create(c.Request().Context(), mw.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, a, "Application created successfully")
}

func (h *ApplicationHandler) ListMine(c echo.Context) error {
	f := appDomain.UserFilter{
		Status:   c.QueryParam("status"),
		LoanType: c.QueryParam("loanType"),
		Limit:    queryInt(c, "limit", 20),
		Offset:   queryInt(c, "offset", 0),
	}
	apps, total, err := h.uc.ListMine(c.Request().Context(), mw.UserID(c), f)
	if err != nil {
		return fail(c, err)
	}
	return okList(c, apps, total, f.Limit, f.Offset)
}

func (h *ApplicationHandler) GetByID(c echo.Context) error {
	admin := mw.IsAdmin(mw.Role(c))
	detail, err := h.uc.GetDetail(c.Request().Context(), c.Param("id"), admin)
	if err != nil {
		return fail(c, err)
	}
	if !admin && detail.UserID != mw.UserID(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "unauthorized to view this application"})
	}
	return ok(c, http.StatusOK, detail, "")
}

func (h *ApplicationHandler) Tracking(c echo.Context) error {
	view, err := h.uc.Tracking(c.Request().Context(), c.Param("id"), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, view, "")
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	var in appuc.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.uc.Update(c.Request().Context(), c.Param("id"), mw.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, a, "Application updated successfully")
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	a, err := h.uc.Submit(c.Request().Context(), c.Param("id"), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, a, "Application submitted successfully")
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.uc.Cancel(c.Request().Context(), c.Param("id"), mw.UserID(c), body.Reason)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, a, "Application cancelled successfully")
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	paths, err := h.uc.Delete(c.Request().Context(), c.Param("id"), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	// disk cleanup is best-effort once the cascade has committed
	if h.cleanup != nil {
		for _, p := range paths {
			_ = h.cleanup(p)
		}
	}
	return ok(c, http.StatusOK, nil, "Application deleted successfully")
}
