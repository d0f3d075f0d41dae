package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"matchday/internal/flash"
	"matchday/internal/forum/db"
	"matchday/internal/forum/middleware"
	"matchday/internal/forum/models"
	"matchday/internal/forum/store"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct{}

func NewForumHandler() *ForumHandler {
	return &ForumHandler{}
}

// Home lists every post across teams, newest first.
func (h *ForumHandler) Home(c *gin.Context) {
	posts, err := store.ListPosts(db.DB)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	Render(c, http.StatusOK, "post/list.html", gin.H{
		"Posts": posts,
		"Title": "Latest posts",
	})
}

// ListTeams shows all available teams (subforums).
func (h *ForumHandler) ListTeams(c *gin.Context) {
	teams, err := store.ListTeams(db.DB)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load teams.")
		return
	}

	Render(c, http.StatusOK, "team/list.html", gin.H{
		"Teams": teams,
		"Title": "Teams",
	})
}

// TeamPosts displays all posts under a specific team.
func (h *ForumHandler) TeamPosts(c *gin.Context) {
	teamID := utils.StringToUint(c.Param("team_id"))

	team, err := store.GetTeam(db.DB, teamID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Team not found.")
		return
	}

	posts, err := store.ListTeamPosts(db.DB, teamID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	Render(c, http.StatusOK, "post/list.html", gin.H{
		"Team":  team,
		"Posts": posts,
		"Title": team.Name,
	})
}

// ShowNewPost renders the post form for a team.
func (h *ForumHandler) ShowNewPost(c *gin.Context) {
	teamID := utils.StringToUint(c.Param("team_id"))

	team, err := store.GetTeam(db.DB, teamID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Team not found.")
		return
	}

	Render(c, http.StatusOK, "post/new.html", gin.H{
		"Team":  team,
		"Title": "New post in " + team.Name,
	})
}

// CreatePost handles the post form submission.
func (h *ForumHandler) CreatePost(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	teamID := utils.StringToUint(c.Param("team_id"))

	title := c.PostForm("title")
	content := c.PostForm("content")

	_, err := store.CreatePost(db.DB, user.ID, teamID, title, content)
	switch {
	case errors.Is(err, store.ErrValidation):
		flash.Set(c, flash.SeverityError, "Title and content are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/teams/%d/post/new", teamID))
	case errors.Is(err, store.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Team not found.")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to create post.")
	default:
		flash.Set(c, flash.SeveritySuccess, "Post created successfully!")
		c.Redirect(http.StatusFound, fmt.Sprintf("/teams/%d", teamID))
	}
}

// renderedComment pairs a comment with its markdown-rendered body.
type renderedComment struct {
	models.Comment
	ContentHTML template.HTML
}

// PostDetail shows one post with its comments.
func (h *ForumHandler) PostDetail(c *gin.Context) {
	teamID := utils.StringToUint(c.Param("team_id"))
	postID := utils.StringToUint(c.Param("post_id"))

	if _, err := store.GetTeam(db.DB, teamID); err != nil {
		RenderError(c, http.StatusNotFound, "Team not found.")
		return
	}

	post, err := store.GetPost(db.DB, postID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	// A post reached through the wrong team's URL is not served there
	if post.TeamID != teamID {
		flash.Set(c, flash.SeverityError, "This post does not belong to that team.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/teams/%d", teamID))
		return
	}

	comments, err := store.ListComments(db.DB, post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load comments.")
		return
	}

	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:     com,
			ContentHTML: utils.RenderMarkdown(com.Content),
		}
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Team":        post.Team,
		"Post":        post,
		"PostContent": utils.RenderMarkdown(post.Content),
		"PostScore":   store.PostScore(db.DB, post.ID),
		"Comments":    rendered,
		"Title":       post.Title,
	})
}

// CreateComment handles the comment form on the detail page. The page
// itself is public, so the login check happens here rather than in the
// route group.
func (h *ForumHandler) CreateComment(c *gin.Context) {
	teamID := utils.StringToUint(c.Param("team_id"))
	postID := utils.StringToUint(c.Param("post_id"))

	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		flash.Set(c, flash.SeverityError, "You must be logged in to comment.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	currentUser := user.(*models.User)

	content := c.PostForm("comment_content")

	_, err := store.CreateComment(db.DB, currentUser.ID, postID, content)
	switch {
	case errors.Is(err, store.ErrValidation):
		flash.Set(c, flash.SeverityError, "Comment cannot be empty.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/teams/%d/post/%d", teamID, postID))
	case errors.Is(err, store.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Post not found.")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to add comment.")
	default:
		flash.Set(c, flash.SeveritySuccess, "Comment added!")
		c.Redirect(http.StatusFound, fmt.Sprintf("/teams/%d/post/%d", teamID, postID))
	}
}
