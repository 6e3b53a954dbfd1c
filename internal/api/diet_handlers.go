package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/service"
)

func DietPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderDiet(c, app, currentUser(c), http.StatusOK, "")
	}
}

func PostDiet(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.DietEntryRequest
		if err := c.ShouldBind(&body); err != nil {
			renderDiet(c, app, user, http.StatusBadRequest, "Please enter a valid date, meal name, and numeric rating.")
			return
		}
		if err := service.ValidateDietEntryRequest(&body); err != nil {
			renderDiet(c, app, user, http.StatusBadRequest, validationMessage(err))
			return
		}

		if _, err := service.CreateDietEntry(c.Request.Context(), app.Diet(), user, &body); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to save diet entry: %v", c.GetString("request_id"), err)
			renderDiet(c, app, user, http.StatusInternalServerError, "Something went wrong saving your entry. Please try again.")
			return
		}

		renderDiet(c, app, user, http.StatusOK, "")
	}
}

func renderDiet(c *gin.Context, app App, user *internal.User, status int, errMsg string) {
	ctx := c.Request.Context()
	entries := service.ListDietEntries(ctx, app.Diet(), app.Logger(), user.ID)
	goal := service.CurrentGoal(ctx, app.Goals(), app.Logger(), user.ID)
	c.HTML(status, "diet.html", gin.H{
		"Title":   "Diet",
		"User":    user.Username,
		"Error":   errMsg,
		"Entries": entries,
		"Tips":    service.DietTips(entries, goal),
		"Chart":   service.DietChart(ctx, app.Diet(), app.Logger(), user.ID),
	})
}
