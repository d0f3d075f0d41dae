package handlers

import (
	"matchday/internal/flash"
	"matchday/internal/forum/middleware"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user' and any
// pending flash messages
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	obj["Flashes"] = flash.Take(c)
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
