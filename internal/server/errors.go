package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	formuladomain "github.com/swiftcargo/freightd/internal/formula/domain"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
	"gorm.io/gorm"
)

var ErrInvalidRequest = errors.New("invalid_request")

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorHandlingMiddleware translates domain errors recorded on the context
// into the {"success":false,"error":...} envelope.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Success: false, Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, taxdomain.ErrChargeNotFound),
		errors.Is(err, taxdomain.ErrTaxCodeNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, formuladomain.ErrInvalidInput),
		errors.Is(err, taxdomain.ErrTaxCodeInactive):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, taxdomain.ErrDuplicateCode):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, taxdomain.ErrInvalidTaxCode),
		errors.Is(err, taxdomain.ErrInvalidChargeCode),
		errors.Is(err, taxdomain.ErrInvalidName),
		errors.Is(err, taxdomain.ErrInvalidTaxRate):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
