package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"matchday/internal/flash"
	"matchday/internal/forum/db"
	"matchday/internal/forum/middleware"
	"matchday/internal/forum/models"
	"matchday/internal/forum/store"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// UpvotePost handles POST /teams/:team_id/post/:post_id/upvote
func (h *VoteHandler) UpvotePost(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	teamID := utils.StringToUint(c.Param("team_id"))
	postID := utils.StringToUint(c.Param("post_id"))

	detailURL := fmt.Sprintf("/teams/%d/post/%d", teamID, postID)

	_, err := store.UpvotePost(db.DB, user.ID, teamID, postID)
	switch {
	case errors.Is(err, store.ErrAlreadyVoted):
		// Informational, not an error: the vote simply stands
		flash.Set(c, flash.SeverityInfo, "You have already upvoted this post.")
		c.Redirect(http.StatusFound, detailURL)
	case errors.Is(err, store.ErrNotFound):
		flash.Set(c, flash.SeverityError, "This post does not belong to that team.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/teams/%d", teamID))
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to record vote.")
	default:
		flash.Set(c, flash.SeveritySuccess, "Post upvoted!")
		c.Redirect(http.StatusFound, detailURL)
	}
}

// UpvoteComment handles POST /teams/:team_id/post/:post_id/comment/:comment_id/upvote
func (h *VoteHandler) UpvoteComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	teamID := utils.StringToUint(c.Param("team_id"))
	postID := utils.StringToUint(c.Param("post_id"))
	commentID := utils.StringToUint(c.Param("comment_id"))

	detailURL := fmt.Sprintf("/teams/%d/post/%d", teamID, postID)

	_, err := store.UpvoteComment(db.DB, user.ID, postID, commentID)
	switch {
	case errors.Is(err, store.ErrAlreadyVoted):
		flash.Set(c, flash.SeverityInfo, "You have already upvoted this comment.")
		c.Redirect(http.StatusFound, detailURL)
	case errors.Is(err, store.ErrNotFound):
		flash.Set(c, flash.SeverityError, "This comment does not belong to that post.")
		c.Redirect(http.StatusFound, detailURL)
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to record vote.")
	default:
		flash.Set(c, flash.SeveritySuccess, "Comment upvoted!")
		c.Redirect(http.StatusFound, detailURL)
	}
}
