package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/service"
)

func FeedbackPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderFeedback(c, app, currentUser(c), http.StatusOK, "")
	}
}

func PostFeedback(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.FeedbackRequest
		if err := c.ShouldBind(&req); err != nil {
			renderFeedback(c, app, user, http.StatusBadRequest, "Please pick a type and page and write a message.")
			return
		}
		if err := service.ValidateFeedbackRequest(&req); err != nil {
			renderFeedback(c, app, user, http.StatusBadRequest, validationMessage(err))
			return
		}

		if _, err := service.SubmitFeedback(c.Request.Context(), app.Feedback(), user, &req); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to save feedback: %v", c.GetString("request_id"), err)
			renderFeedback(c, app, user, http.StatusInternalServerError, "Something went wrong sending your feedback. Please try again.")
			return
		}

		c.Redirect(http.StatusFound, "/feedback")
	}
}

func renderFeedback(c *gin.Context, app App, user *internal.User, status int, errMsg string) {
	entries := service.RecentFeedback(c.Request.Context(), app.Feedback(), app.Logger(), user.ID)
	c.HTML(status, "feedback.html", gin.H{
		"Title":    "Feedback",
		"User":     user.Username,
		"Error":    errMsg,
		"Feedback": entries,
	})
}
