package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

func currentUser(c *gin.Context) *internal.User {
	return c.MustGet("user").(*internal.User)
}

// renderServerError logs the failure with the request id and shows the
// generic 500 view; storage errors never reach the page raw.
func renderServerError(c *gin.Context, logger internal.Logger, err error, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server error"})
}

// validationMessage turns a validator error into an inline form message.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Please fill in all required fields with valid values."
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "Please fill in the " + fieldLabel(fe.Field()) + " field."
	case "gte", "lte", "gt", "min", "max", "oneof":
		return "The " + fieldLabel(fe.Field()) + " field has an invalid value."
	case "email":
		return "Please enter a valid email address."
	default:
		return "Please fill in all required fields with valid values."
	}
}

func fieldLabel(field string) string {
	switch field {
	case "MealName":
		return "meal name"
	case "SleepLength":
		return "sleep length"
	case "SleepQuality":
		return "sleep quality"
	default:
		// remaining field names are single words (Date, Rating, ...)
		return strings.ToLower(field)
	}
}
