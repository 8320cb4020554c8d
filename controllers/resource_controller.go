package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/middleware"
	"github.com/cppla/huxiang/services"
	"github.com/cppla/huxiang/utils"
	"github.com/cppla/huxiang/views"
)

// ResourceController serves cultural resources.
type ResourceController struct {
	db        *gorm.DB
	resources *services.ResourceService
}

// NewResourceController creates a ResourceController. db is used for role lookups.
func NewResourceController(db *gorm.DB, resources *services.ResourceService) *ResourceController {
	return &ResourceController{db: db, resources: resources}
}

// ListResources returns published resources filtered by type, category and search text.
func (r *ResourceController) ListResources(ctx *gin.Context) {
	var q dto.ListResourcesQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		bindFailed(ctx, 40020, err)
		return
	}

	items, page, err := r.resources.List(ctx.Request.Context(), q.Filter())
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewResourcePage(items, page))
}

// GetResource returns one resource and counts the view. Admins may read drafts.
func (r *ResourceController) GetResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid resource id")
		return
	}

	includeDrafts := false
	if uid, ok := middleware.UserID(ctx); ok {
		includeDrafts = middleware.IsAdmin(ctx, r.db, uid)
	}

	res, err := r.resources.View(ctx.Request.Context(), id, includeDrafts)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewResourceDetail(res))
}

// CreateResource stores a new resource. Requires the admin role.
func (r *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40022, err)
		return
	}

	res, err := r.resources.Create(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Created(ctx, "resource created", gin.H{"id": res.ID, "resource": views.NewResourceDetail(res)})
}

// UpdateResource patches a resource and may publish a draft. Requires the admin role.
func (r *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid resource id")
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40023, err)
		return
	}

	res, err := r.resources.Update(ctx.Request.Context(), id, req)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewResourceDetail(res))
}

// LikeResource increments the like counter.
func (r *ResourceController) LikeResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid resource id")
		return
	}

	likes, err := r.resources.Like(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"id": id, "like_count": likes})
}
