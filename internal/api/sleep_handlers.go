package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/service"
)

func SleepPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderSleep(c, app, currentUser(c), http.StatusOK, "")
	}
}

func PostSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.SleepEntryRequest
		if err := c.ShouldBind(&body); err != nil {
			renderSleep(c, app, user, http.StatusBadRequest, "Please enter a valid date and numeric duration and rating.")
			return
		}
		if err := service.ValidateSleepEntryRequest(&body); err != nil {
			renderSleep(c, app, user, http.StatusBadRequest, validationMessage(err))
			return
		}

		if _, err := service.CreateSleepEntry(c.Request.Context(), app.Sleep(), user, &body); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to save sleep entry: %v", c.GetString("request_id"), err)
			renderSleep(c, app, user, http.StatusInternalServerError, "Something went wrong saving your entry. Please try again.")
			return
		}

		renderSleep(c, app, user, http.StatusOK, "")
	}
}

// renderSleep re-queries entries, goal, tips, and chart data — the POST path
// falls through to the same render as GET.
func renderSleep(c *gin.Context, app App, user *internal.User, status int, errMsg string) {
	ctx := c.Request.Context()
	entries := service.ListSleepEntries(ctx, app.Sleep(), app.Logger(), user.ID)
	goal := service.CurrentGoal(ctx, app.Goals(), app.Logger(), user.ID)
	c.HTML(status, "sleep.html", gin.H{
		"Title":   "Sleep",
		"User":    user.Username,
		"Error":   errMsg,
		"Entries": entries,
		"Tips":    service.SleepTips(entries, goal),
		"Chart":   service.SleepChart(ctx, app.Sleep(), app.Logger(), user.ID),
	})
}
