package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
	"github.com/DarkcodeQuan/WebProject/pkg/logger"
)

// respondError maps an error to its taxonomy status and a generic message.
// Internal detail goes to the log only.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.ErrInternalServer
	}

	logger.Error(c, "Request failed", err)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
