package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"matchday/internal/blog/db"
	"matchday/internal/blog/store"
	"matchday/internal/flash"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct{}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{}
}

// Render injects pending flash messages before handing off to the template.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	obj["Flashes"] = flash.Take(c)
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// Home lists posts newest first.
func (h *BlogHandler) Home(c *gin.Context) {
	posts, err := store.ListPosts(db.DB)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	Render(c, http.StatusOK, "post/list.html", gin.H{
		"Posts": posts,
		"Title": "Blog",
	})
}

// PostDetail shows one post with its comments and counts the read.
func (h *BlogHandler) PostDetail(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	post, err := store.GetPost(db.DB, postID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	store.RecordRead(db.DB, post)

	comments, err := store.ListComments(db.DB, post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load comments.")
		return
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Post":        post,
		"PostContent": utils.RenderMarkdown(post.Body),
		"Comments":    comments,
		"Title":       post.Title,
	})
}

// CreateComment accepts an anonymous comment with a free-text author name.
func (h *BlogHandler) CreateComment(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	author := c.PostForm("author")
	content := c.PostForm("content")

	_, err := store.CreateComment(db.DB, postID, author, content)
	switch {
	case errors.Is(err, store.ErrValidation):
		flash.Set(c, flash.SeverityError, "Name and comment are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
	case errors.Is(err, store.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Post not found.")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to add comment.")
	default:
		flash.Set(c, flash.SeveritySuccess, "Comment added!")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
	}
}

// ListUsers shows every registered user.
func (h *BlogHandler) ListUsers(c *gin.Context) {
	users, err := store.ListUsers(db.DB)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load users.")
		return
	}

	Render(c, http.StatusOK, "user/list.html", gin.H{
		"Users": users,
		"Title": "Users",
	})
}

// UserProfile shows a single user.
func (h *BlogHandler) UserProfile(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))

	user, err := store.GetUser(db.DB, userID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "User not found.")
		return
	}

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"User":  user,
		"Title": user.Username,
	})
}
