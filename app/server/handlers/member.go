package handlers

import (
	"errors"
	"net/http"
	"orpheo-api/app/server/gen/oapi/api"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/store"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgMemberNotFound     = "member not found"
	msgMemberRUTTaken     = "a member with this rut already exists"
	msgMemberHasAccount   = "member has an associated user account, deactivate the member instead"
	msgMemberReferenced   = "member is referenced by other records, deactivate the member instead"
	msgMemberRequired     = "first names, last names and rut are required"
	msgMemberInvalid      = "invalid grade or email"
	msgSearchQueryMissing = "search query is required"
)

// parseGradeFilter returns nil for an absent or "all" grade.
func parseGradeFilter(raw *string) (*models.Grade, bool) {
	if raw == nil || *raw == "" || *raw == "all" {
		return nil, true
	}
	grade := models.Grade(*raw)
	if !grade.Valid() {
		return nil, false
	}
	return &grade, true
}

func (a *App) listMembers(c echo.Context, filter store.MemberFilter, pageNum, pageLimit *uint) error {
	rctx := c.Request().Context()

	page, limit := a.parsePagination(pageNum, pageLimit)

	members, count, err := a.store.ListMembers(rctx, filter, page)
	if err != nil {
		a.l.Error("failed to get member list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &listResponse[memberInfo]{
		Limit:   limit,
		PageMax: a.calcMaxPage(count, limit),
		Total:   count,
		List:    toMemberInfos(members),
	})
}

func (a *App) MemberList(c echo.Context, params api.MemberListParams) error {
	grade, ok := parseGradeFilter(params.Grade)
	if !ok {
		return a.erm(c, http.StatusBadRequest, "invalid grade")
	}

	return a.listMembers(c, store.MemberFilter{Grade: grade, Active: params.Active}, params.Page, params.Limit)
}

func (a *App) MemberSearch(c echo.Context, params api.MemberSearchParams) error {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return a.erm(c, http.StatusBadRequest, msgSearchQueryMissing)
	}

	grade, ok := parseGradeFilter(params.Grade)
	if !ok {
		return a.erm(c, http.StatusBadRequest, "invalid grade")
	}

	return a.listMembers(c, store.MemberFilter{Grade: grade, Query: query}, params.Page, params.Limit)
}

func (a *App) MemberListByGrade(c echo.Context, grade api.Grade, params api.MemberListByGradeParams) error {
	filterGrade := models.Grade(grade)
	if !filterGrade.Valid() {
		return a.erm(c, http.StatusBadRequest, "invalid grade")
	}

	return a.listMembers(c, store.MemberFilter{Grade: &filterGrade}, params.Page, params.Limit)
}

func (a *App) MemberGet(c echo.Context, id uint) error {
	if id == 0 {
		return a.er(c, http.StatusBadRequest)
	}

	member, err := a.memberByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.erm(c, http.StatusNotFound, msgMemberNotFound)
		}
		a.l.Error("failed to get member", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, toMemberInfo(member))
}

// memberMapFields copies the supplied fields of req onto member.
func (a *App) memberMapFields(req *memberInput, member *models.Member) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	setString(&member.FirstNames, req.FirstNames)
	setString(&member.LastNames, req.LastNames)
	if req.RUT != nil {
		rut := strings.TrimSpace(*req.RUT)
		member.RUT = &rut
	}
	if req.Grade != nil {
		member.Grade = *req.Grade
	}
	setString(&member.Title, req.Title)
	if req.Active != nil {
		member.Active = *req.Active
	}

	setString(&member.Email, req.Email)
	setString(&member.Phone, req.Phone)
	setString(&member.Address, req.Address)

	setString(&member.Profession, req.Profession)
	setString(&member.Occupation, req.Occupation)
	setString(&member.WorkName, req.WorkName)
	setString(&member.WorkAddress, req.WorkAddress)
	setString(&member.WorkPhone, req.WorkPhone)
	setString(&member.WorkEmail, req.WorkEmail)

	setString(&member.PartnerName, req.PartnerName)
	setString(&member.PartnerPhone, req.PartnerPhone)
	setString(&member.EmergencyContactName, req.EmergencyContactName)
	setString(&member.EmergencyContactPhone, req.EmergencyContactPhone)

	setString(&member.HealthNotes, req.HealthNotes)

	dates := []struct {
		src *string
		dst **time.Time
	}{
		{req.BirthDate, &member.BirthDate},
		{req.InitiationDate, &member.InitiationDate},
		{req.PassingDate, &member.PassingDate},
		{req.ExaltationDate, &member.ExaltationDate},
	}
	for _, d := range dates {
		if d.src == nil {
			continue
		}
		parsed, err := parseDate(*d.src)
		if err != nil {
			return err
		}
		*d.dst = parsed
	}

	return nil
}

func (a *App) MemberCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req memberInput
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return a.erm(c, http.StatusBadRequest, msgMemberInvalid)
	}

	member := models.Member{
		Grade:  models.GradeApprentice,
		Active: true,
	}
	if err := a.memberMapFields(&req, &member); err != nil {
		return a.erm(c, http.StatusBadRequest, err.Error())
	}
	if member.FirstNames == "" || member.LastNames == "" || member.RUT == nil || *member.RUT == "" {
		return a.erm(c, http.StatusBadRequest, msgMemberRequired)
	}

	if _, err := a.store.MemberByRUT(rctx, *member.RUT); err == nil {
		return a.erm(c, http.StatusBadRequest, msgMemberRUTTaken)
	} else if !errors.Is(err, store.ErrNotFound) {
		a.l.Error("failed to check member rut", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.store.CreateMember(rctx, &member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return a.erm(c, http.StatusBadRequest, msgMemberRUTTaken)
		}
		a.l.Error("failed to create member", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, toMemberInfo(&member))
}

func (a *App) MemberUpdate(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	if id == 0 {
		return a.er(c, http.StatusBadRequest)
	}

	var req memberInput
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return a.erm(c, http.StatusBadRequest, msgMemberInvalid)
	}

	// Always edit the stored row, never a cached copy
	member, err := a.store.MemberByID(rctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.erm(c, http.StatusNotFound, msgMemberNotFound)
		}
		a.l.Error("failed to get member", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if req.RUT != nil {
		rut := strings.TrimSpace(*req.RUT)
		if rut == "" {
			return a.erm(c, http.StatusBadRequest, msgMemberRequired)
		}
		if member.RUT == nil || *member.RUT != rut {
			if other, err := a.store.MemberByRUT(rctx, rut); err == nil && other.ID != member.ID {
				return a.erm(c, http.StatusBadRequest, msgMemberRUTTaken)
			} else if err != nil && !errors.Is(err, store.ErrNotFound) {
				a.l.Error("failed to check member rut", zap.Error(err))
				return a.er(c, http.StatusInternalServerError)
			}
		}
	}

	if err := a.memberMapFields(&req, member); err != nil {
		return a.erm(c, http.StatusBadRequest, err.Error())
	}
	if member.FirstNames == "" || member.LastNames == "" {
		return a.erm(c, http.StatusBadRequest, msgMemberRequired)
	}

	if err := a.store.SaveMember(rctx, member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return a.erm(c, http.StatusBadRequest, msgMemberRUTTaken)
		}
		a.l.Error("failed to update member", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.invalidateMember(rctx, id)

	return c.JSON(http.StatusOK, toMemberInfo(member))
}

func (a *App) MemberDelete(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	if id == 0 {
		return a.er(c, http.StatusBadRequest)
	}

	if _, err := a.store.MemberByID(rctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.erm(c, http.StatusNotFound, msgMemberNotFound)
		}
		a.l.Error("failed to get member", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	hasAccount, err := a.store.AccountExistsForMember(rctx, id)
	if err != nil {
		a.l.Error("failed to check member account", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if hasAccount {
		return a.erm(c, http.StatusBadRequest, msgMemberHasAccount)
	}

	if err := a.store.DeleteMember(rctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return a.erm(c, http.StatusNotFound, msgMemberNotFound)
		case errors.Is(err, store.ErrInUse):
			return a.erm(c, http.StatusBadRequest, msgMemberReferenced)
		default:
			a.l.Error("failed to delete member", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}
	a.invalidateMember(rctx, id)

	return c.JSON(http.StatusOK, echo.Map{"message": "member deleted"})
}
