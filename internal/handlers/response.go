package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/services"
	"github.com/alimgiray/projectboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldLabels names form fields in binding error messages
var fieldLabels = map[string]string{
	"Title":       "Project title",
	"Description": "Project description",
	"VideoURL":    "Video URL",
	"UserProblem": "User problem",
	"FullName":    "Full name",
	"Email":       "Email",
	"Message":     "Message",
}

// respondError writes err as a JSON error body with a matching status code.
// Store failures pass their message through unchanged.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"kind":  verr.Kind,
			"field": verr.Field,
		})
	case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotProjectOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondBindingError reports the first missing or malformed form field
func respondBindingError(c *gin.Context, err error) {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form submission"})
		return
	}

	fe := fieldErrors[0]
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	message := fmt.Sprintf("%s is invalid", label)
	switch fe.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", label)
	case "email":
		message = "Please enter a valid email address"
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": message, "field": fe.Field()})
}
