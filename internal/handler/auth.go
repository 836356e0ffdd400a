package handler

import (
	"errors"
	"net/http"

	"github.com/WallaceMuylaert/optics-api/internal/apierror"
	"github.com/WallaceMuylaert/optics-api/internal/dto"
	"github.com/WallaceMuylaert/optics-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Check credentials against users, then suppliers
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
