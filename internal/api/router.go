package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/auth"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/view"
)

// NewRouter wires every route from the page handlers. Unauthenticated
// requests to protected pages redirect to /login.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), RequestLogger(app.Logger()), Recovery(app.Logger()))
	r.SetHTMLTemplate(view.Templates())
	r.Static("/static", "./static")

	r.GET("/login", ShowLogin(app))
	r.POST("/login", Login(app))
	r.GET("/register", ShowRegister(app))
	r.POST("/register", Register(app))

	protected := r.Group("")
	protected.Use(auth.RequireAuth(app.Sessions(), app.Users()))
	{
		protected.GET("/", Home(app))
		protected.GET("/logout", Logout(app))
		protected.GET("/sleep", SleepPage(app))
		protected.POST("/sleep", PostSleep(app))
		protected.GET("/diet", DietPage(app))
		protected.POST("/diet", PostDiet(app))
		protected.GET("/workout", WorkoutPage(app))
		protected.POST("/workout", PostWorkout(app))
		protected.GET("/goals", GoalsPage(app))
		protected.POST("/goals", PostGoals(app))
		protected.GET("/feedback", FeedbackPage(app))
		protected.POST("/feedback", PostFeedback(app))
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not found"})
	})

	return r
}
