package handlers

import (
	"errors"
	"net/http"
	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/metrics"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type registerRequest struct {
	Username       string `json:"username" validate:"required,max=64"`
	Password       string `json:"password" validate:"required,max=72"` // bcrypt input limit
	Email          string `json:"email" validate:"omitempty,email"`
	FirstNames     string `json:"firstNames"`
	LastNames      string `json:"lastNames"`
	RUT            string `json:"rut"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Profession     string `json:"profession"`
	Occupation     string `json:"occupation"`
	BirthDate      string `json:"birthDate"`
	InitiationDate string `json:"initiationDate"`
}

type memberRef struct {
	ID *uint `json:"id"`
}

type registerResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Active  bool      `json:"active"`
	Member  memberRef `json:"member"`
}

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := c.Validate(&req); err != nil {
		return a.erm(c, http.StatusBadRequest, "username and password are required, email must be valid")
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return a.erm(c, http.StatusBadRequest, err.Error())
	}
	initiationDate, err := parseDate(req.InitiationDate)
	if err != nil {
		return a.erm(c, http.StatusBadRequest, err.Error())
	}

	res, err := a.auth.Register(rctx, auth.Registration{
		Username:       req.Username,
		Password:       req.Password,
		Email:          req.Email,
		FirstNames:     req.FirstNames,
		LastNames:      req.LastNames,
		RUT:            req.RUT,
		Phone:          req.Phone,
		Address:        req.Address,
		Profession:     req.Profession,
		Occupation:     req.Occupation,
		BirthDate:      birthDate,
		InitiationDate: initiationDate,
	})
	a.metrics.AuthEvent(metrics.OperationRegister, auth.Kind(err))
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) || errors.Is(err, auth.ErrRUTTaken) {
			return a.erm(c, http.StatusBadRequest, auth.Message(err))
		}
		a.l.Error("failed to register", zap.String("username", req.Username), zap.Error(err))
		return a.erm(c, http.StatusInternalServerError, auth.Message(err))
	}

	message := "user registered"
	if !res.Active {
		message = "user registered, pending approval"
	}

	return c.JSON(http.StatusCreated, &registerResponse{
		Success: true,
		Message: message,
		Active:  res.Active,
		Member:  memberRef{ID: res.MemberID},
	})
}
