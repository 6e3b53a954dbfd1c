package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/service"
)

func GoalsPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderGoals(c, app, currentUser(c), http.StatusOK, "")
	}
}

func PostGoals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.GoalRequest
		if err := c.ShouldBind(&req); err != nil {
			renderGoals(c, app, user, http.StatusBadRequest, "All four goals are required and must be numeric.")
			return
		}
		if err := service.ValidateGoalRequest(&req); err != nil {
			renderGoals(c, app, user, http.StatusBadRequest, validationMessage(err))
			return
		}

		if _, err := service.UpsertGoal(c.Request.Context(), app.Goals(), user, &req); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to save goals: %v", c.GetString("request_id"), err)
			renderGoals(c, app, user, http.StatusInternalServerError, "Something went wrong saving your goals. Please try again.")
			return
		}

		renderGoals(c, app, user, http.StatusOK, "")
	}
}

func renderGoals(c *gin.Context, app App, user *internal.User, status int, errMsg string) {
	goal := service.CurrentGoal(c.Request.Context(), app.Goals(), app.Logger(), user.ID)
	c.HTML(status, "goals.html", gin.H{
		"Title": "Goals",
		"User":  user.Username,
		"Error": errMsg,
		"Goal":  goal,
	})
}
