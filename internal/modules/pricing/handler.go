package pricing

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtbooking/internal/domain"
	"courtbooking/internal/pkg/response"
)

type Handler struct {
	resolver *Resolver
	slots    SlotDefinitionRepository
	loc      *time.Location
}

func NewHandler(resolver *Resolver, slots SlotDefinitionRepository, loc *time.Location) *Handler {
	return &Handler{resolver: resolver, slots: slots, loc: loc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courts/:id/slots/:slot/price", h.GetPrice)
}

// GetPrice handles GET /api/v1/courts/:id/slots/:slot/price?date=YYYY-MM-DD
func (h *Handler) GetPrice(c *gin.Context) {
	var uri PriceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid court id or slot index")
		return
	}
	var q PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}
	date, err := domain.ParseDate(q.Date, h.loc)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctx := c.Request.Context()
	def, err := h.slots.Get(ctx, uri.CourtID, uri.SlotIndex)
	if err != nil {
		response.FromError(c, fmt.Errorf("%w: load slot definition: %w", domain.ErrInfrastructure, err))
		return
	}
	if def == nil {
		response.FromError(c, fmt.Errorf("%w: court %d has no slot %d", domain.ErrNotFound, uri.CourtID, uri.SlotIndex))
		return
	}

	price, err := h.resolver.ResolvePrice(ctx, uri.CourtID, uri.SlotIndex, date)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PriceResponse{
		CourtID:   uri.CourtID,
		SlotIndex: uri.SlotIndex,
		Date:      q.Date,
		DayType:   price.DayType,
		Price:     price.Amount,
		Tier:      price.Tier,
		SettingID: price.SettingID,
	})
}
