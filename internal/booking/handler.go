package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flightdeck/internal/httperr"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/bookings", h.CreateHandler)
	router.GET("/v1/bookings/:reference", h.GetHandler)
}

// CreateHandler godoc
// @Summary      Create a booking from a confirmed selection
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body Request true "Confirmed outbound/return pair"
// @Success      201 {object} Record
// @Failure      400 {object} map[string]string
// @Router       /v1/bookings [post]
func (h *Handler) CreateHandler(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid JSON body",
			"code":  httperr.ErrorCodeValidation,
		})
		return
	}

	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Send(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetHandler godoc
// @Summary      Fetch a booking by reference
// @Tags         bookings
// @Produce      json
// @Param        reference path string true "Booking reference"
// @Success      200 {object} Record
// @Failure      404 {object} map[string]string
// @Router       /v1/bookings/{reference} [get]
func (h *Handler) GetHandler(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("reference"))
	if err != nil {
		httperr.Send(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
