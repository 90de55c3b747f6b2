package availability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtbooking/internal/domain"
	"courtbooking/internal/pkg/response"
)

type Handler struct {
	resolver  *Resolver
	occupancy OccupancyRepository
	loc       *time.Location
}

func NewHandler(resolver *Resolver, occupancy OccupancyRepository, loc *time.Location) *Handler {
	return &Handler{resolver: resolver, occupancy: occupancy, loc: loc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	courts := rg.Group("/courts/:id")
	{
		courts.GET("/available-slots", h.GetAvailableSlots)
		courts.GET("/occupancy", h.GetOccupancy)
	}
}

func (h *Handler) bind(c *gin.Context) (int64, time.Time, bool) {
	var uri CourtURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid court id")
		return 0, time.Time{}, false
	}
	var q DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return 0, time.Time{}, false
	}
	date, err := domain.ParseDate(q.Date, h.loc)
	if err != nil {
		response.FromError(c, err)
		return 0, time.Time{}, false
	}
	return uri.CourtID, date, true
}

// GetAvailableSlots handles GET /api/v1/courts/:id/available-slots?date=YYYY-MM-DD
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	courtID, date, ok := h.bind(c)
	if !ok {
		return
	}

	res, err := h.resolver.AvailableSlots(c.Request.Context(), courtID, date)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetOccupancy handles GET /api/v1/courts/:id/occupancy?date=YYYY-MM-DD
func (h *Handler) GetOccupancy(c *gin.Context) {
	courtID, date, ok := h.bind(c)
	if !ok {
		return
	}

	rows, err := h.occupancy.ListByCourtDate(c.Request.Context(), courtID, domain.DateKey(date))
	if err != nil {
		response.FromError(c, fmt.Errorf("%w: load occupancy: %w", domain.ErrInfrastructure, err))
		return
	}

	items := make([]OccupancyItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, OccupancyItem{SlotIndex: row.SlotIndex, Status: string(row.Status)})
	}
	response.Success(c, http.StatusOK, gin.H{"court_id": courtID, "date": domain.DateKey(date), "items": items})
}
