package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/service"
)

func ShowLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Log in"})
	}
}

func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"Title": "Log in", "Error": "Incorrect username or password"})
			return
		}
		if err := service.ValidateLoginRequest(&req); err != nil {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"Title": "Log in", "Error": "Incorrect username or password"})
			return
		}

		user, err := service.Authenticate(c.Request.Context(), app.Users(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, internal.ErrInvalidCredentials) {
				c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Title": "Log in", "Error": "Incorrect username or password"})
				return
			}
			renderServerError(c, app.Logger(), err, "login failed")
			return
		}

		token, err := app.Sessions().Issue(user.ID)
		if err != nil {
			renderServerError(c, app.Logger(), err, "failed to issue session")
			return
		}
		app.Sessions().SetCookie(c, token)
		c.Redirect(http.StatusFound, "/")
	}
}

func ShowRegister(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{"Title": "Register"})
	}
}

func Register(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterRequest
		if err := c.ShouldBind(&req); err != nil {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Title": "Register", "Error": "Please enter a username and password."})
			return
		}
		if err := service.ValidateRegisterRequest(&req); err != nil {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Title": "Register", "Error": validationMessage(err)})
			return
		}

		if _, err := service.Register(c.Request.Context(), app.Users(), &req); err != nil {
			if errors.Is(err, internal.ErrDuplicateUsername) {
				c.HTML(http.StatusConflict, "register.html", gin.H{"Title": "Register", "Error": "Username taken!"})
				return
			}
			renderServerError(c, app.Logger(), err, "registration failed")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	}
}

func Logout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.Sessions().ClearCookie(c)
		c.Redirect(http.StatusFound, "/login")
	}
}
