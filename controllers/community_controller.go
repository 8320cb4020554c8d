package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/middleware"
	"github.com/cppla/huxiang/services"
	"github.com/cppla/huxiang/utils"
	"github.com/cppla/huxiang/views"
)

// CommunityController serves community posts and comments.
type CommunityController struct {
	community *services.CommunityService
}

// NewCommunityController creates a CommunityController.
func NewCommunityController(community *services.CommunityService) *CommunityController {
	return &CommunityController{community: community}
}

// ListPosts returns published posts, newest first.
func (c *CommunityController) ListPosts(ctx *gin.Context) {
	var q dto.ListPostsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		bindFailed(ctx, 40030, err)
		return
	}

	items, page, err := c.community.ListPosts(ctx.Request.Context(), q.Filter())
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewPostPage(items, page))
}

// GetPost returns a post with nested comments and counts the view.
func (c *CommunityController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid post id")
		return
	}
	viewer, _ := middleware.UserID(ctx)

	detail, err := c.community.ViewPost(ctx.Request.Context(), id, viewer)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewPostDetail(detail))
}

// CreatePost allows authenticated users to create new posts.
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	uid, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "unauthorized")
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40032, err)
		return
	}

	post, err := c.community.CreatePost(ctx.Request.Context(), uid, req)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Created(ctx, "post created", gin.H{"post_id": post.ID})
}

// LikePost increments the like counter.
func (c *CommunityController) LikePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid post id")
		return
	}

	likes, err := c.community.LikePost(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"id": id, "like_count": likes})
}

// CreateComment adds a comment or, with parent_id, a reply.
func (c *CommunityController) CreateComment(ctx *gin.Context) {
	uid, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "unauthorized")
		return
	}
	postID, ok := parseID(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid post id")
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40033, err)
		return
	}

	comment, err := c.community.AddComment(ctx.Request.Context(), postID, uid, req)
	if err != nil {
		fail(ctx, err)
		return
	}

	data := gin.H{
		"comment_id": comment.ID,
		"post_id":    comment.PostID,
		"parent_id":  comment.ParentID,
		"content":    comment.Content,
		"author":     views.NewAuthorSummary(comment.AuthorID, comment.Author),
		"created_at": views.FormatTime(comment.CreatedAt),
	}
	utils.Created(ctx, "comment created", data)
}
