package search

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
	router.GET("/v1/flights/search", h.SearchHandler)
	router.POST("/v1/flights/view", h.ViewHandler)
	router.GET("/v1/locations/search", h.LocationsHandler)
}

// SearchHandler godoc
// @Summary      Search flight offers
// @Description  Fetch the raw result set for a search tuple, cached per tuple
// @Tags         flights
// @Produce      json
// @Param        origin      query string true  "Origin IATA code"
// @Param        destination query string true  "Destination IATA code"
// @Param        date        query string true  "Departure date YYYY-MM-DD"
// @Param        returnDate  query string false "Return date YYYY-MM-DD"
// @Param        adults      query int    false "Passenger count"
// @Success      200 {object} Response
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/flights/search [get]
func (h *Handler) SearchHandler(c *gin.Context) {
	var req Request
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid query parameters",
			"code":  httperr.ErrorCodeValidation,
		})
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Send(c, err)
		return
	}

	response, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		httperr.Send(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ViewHandler godoc
// @Summary      Recompute derived flight views
// @Description  Apply filter, sort, outbound grouping and return matching to a cached result set
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body ViewRequest true "View state"
// @Success      200 {object} ViewResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/flights/view [post]
func (h *Handler) ViewHandler(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid JSON body",
			"code":  httperr.ErrorCodeValidation,
		})
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Send(c, err)
		return
	}

	response, err := h.service.View(c.Request.Context(), req)
	if err != nil {
		httperr.Send(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// LocationsHandler godoc
// @Summary      City and airport autocomplete
// @Tags         locations
// @Produce      json
// @Param        keyword query string true "Search keyword"
// @Success      200 {object} map[string]interface{}
// @Router       /v1/locations/search [get]
func (h *Handler) LocationsHandler(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		httperr.Send(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": locations})
}
