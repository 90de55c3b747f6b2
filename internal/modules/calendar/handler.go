package calendar

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtbooking/internal/domain"
	"courtbooking/internal/pkg/response"
)

type Handler struct {
	classifier *Classifier
	loc        *time.Location
}

func NewHandler(classifier *Classifier, loc *time.Location) *Handler {
	return &Handler{classifier: classifier, loc: loc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar/day-type", h.GetDayType)
}

// GetDayType handles GET /api/v1/calendar/day-type?date=YYYY-MM-DD
func (h *Handler) GetDayType(c *gin.Context) {
	var q DayTypeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}
	date, err := domain.ParseDate(q.Date, h.loc)
	if err != nil {
		response.FromError(c, err)
		return
	}

	dayType, err := h.classifier.Classify(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, DayTypeResponse{Date: q.Date, DayType: dayType})
}
