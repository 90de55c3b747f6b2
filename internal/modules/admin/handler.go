package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courtbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	// slot templates
	admin.GET("/courts/:id/slots", h.ListSlots)
	admin.PUT("/courts/:id/slots", h.ReplaceSlots)

	// price settings
	admin.GET("/price-settings", h.ListPriceSettings)
	admin.POST("/price-settings", h.CreatePriceSetting)
	admin.PATCH("/price-settings/:id/deactivate", h.DeactivatePriceSetting)
	admin.GET("/price-settings/overlaps", h.GetPriceOverlaps)

	// holidays
	admin.GET("/holidays", h.ListHolidays)
	admin.POST("/holidays", h.CreateHoliday)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListSlots(c *gin.Context) {
	courtID, ok := parseID(c)
	if !ok {
		return
	}
	slots, err := h.service.ListSlots(c.Request.Context(), courtID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) ReplaceSlots(c *gin.Context) {
	courtID, ok := parseID(c)
	if !ok {
		return
	}
	var req ReplaceSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	slots, err := h.service.ReplaceSlots(c.Request.Context(), courtID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) ListPriceSettings(c *gin.Context) {
	rows, err := h.service.ListPriceSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"price_settings": rows})
}

func (h *Handler) CreatePriceSetting(c *gin.Context) {
	var req CreatePriceSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	p, err := h.service.CreatePriceSetting(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"price_setting": p})
}

func (h *Handler) DeactivatePriceSetting(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeactivatePriceSetting(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "is_active": false})
}

func (h *Handler) GetPriceOverlaps(c *gin.Context) {
	overlaps, err := h.service.FindPriceOverlaps(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"overlaps": overlaps})
}

func (h *Handler) ListHolidays(c *gin.Context) {
	rows, err := h.service.ListHolidays(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"holidays": rows})
}

func (h *Handler) CreateHoliday(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	holiday, err := h.service.CreateHoliday(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"holiday": holiday})
}
