package handler

import (
	"net/http"

	"github.com/WallaceMuylaert/optics-api/internal/apierror"
	"github.com/WallaceMuylaert/optics-api/internal/dto"
	"github.com/WallaceMuylaert/optics-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AddressesHandler struct{ svc service.AddressService }

func NewAddressesHandler(svc service.AddressService) *AddressesHandler {
	return &AddressesHandler{svc: svc}
}

func (h *AddressesHandler) Create(c *gin.Context) {
	var req dto.CreateAddressRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AddressesHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AddressesHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	resp, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AddressesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AddressesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
}
