package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Home", "User": user.Username})
	}
}
