package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtbooking/internal/domain"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError writes the envelope for an error built on the domain sentinels.
// Infrastructure details are not leaked to the client; the error is attached
// to the gin context so the logging middleware records the full chain.
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrValidation):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrAmbiguous):
		Error(c, http.StatusConflict, "PRICE_AMBIGUOUS", err.Error())
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrInfrastructure):
		Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "storage temporarily unavailable")
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
