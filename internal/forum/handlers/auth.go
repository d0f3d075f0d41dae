package handlers

import (
	"errors"
	"net/http"

	"matchday/internal/flash"
	"matchday/internal/forum/db"
	"matchday/internal/forum/middleware"
	"matchday/internal/forum/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if _, exists := c.Get(middleware.CheckUserKey); exists {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := store.RegisterUser(db.DB, username, email, password)
	switch {
	case errors.Is(err, store.ErrValidation):
		flash.Set(c, flash.SeverityError, "Username and password are required.")
		c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, store.ErrDuplicateUsername):
		flash.Set(c, flash.SeverityError, "Username already exists. Try a different one.")
		c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, store.ErrDuplicateEmail):
		flash.Set(c, flash.SeverityError, "Email already registered.")
		c.Redirect(http.StatusFound, "/register")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Registration failed, please try again.")
	default:
		flash.Set(c, flash.SeveritySuccess, "Registration successful! Please log in.")
		c.Redirect(http.StatusFound, "/login")
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, exists := c.Get(middleware.CheckUserKey); exists {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := store.AuthenticateUser(db.DB, username, password)
	if err != nil {
		flash.Set(c, flash.SeverityError, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	flash.Set(c, flash.SeveritySuccess, "Logged in successfully!")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	flash.Set(c, flash.SeverityInfo, "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}
