package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "fatura/internal/errors"
	"fatura/internal/logger"
)

// respondSuccess writes the {"message", "data"} envelope every read/write
// endpoint uses.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"message": "Success", "data": data})
}

// respondDeleted confirms a deletion without a payload.
func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// respondWithError writes a consistent {"message"} error response. If the
// error is an *AppError it uses the error's status code and message.
// Otherwise it logs the unexpected error and returns a generic internal
// server error so store internals never reach the caller.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"message": appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{"message": apperrors.ErrInternalServer.Message})
}

// bindingError maps a gin binding failure to an AppError. Fields with a
// dedicated error sentinel (per-field map, keyed by struct field name) get
// their discriminated error; everything else reports invalid input.
func bindingError(err error, fields map[string]*apperrors.AppError) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if appErr, ok := fields[verrs[0].Field()]; ok {
			return appErr
		}
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err)
}

// MethodNotAllowed rejects unsupported methods on known routes.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Invalid Method!"})
}

// NotFound rejects unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
}
