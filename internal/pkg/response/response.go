package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hbnb/internal/domain"
)

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// FromError writes the response for a facade or binding error:
// validation and reference failures are 400, missing entities 404, the rest 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrReference):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("unhandled error")
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}
