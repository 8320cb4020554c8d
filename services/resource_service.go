package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

// ResourceService manages cultural resources.
type ResourceService struct {
	db *gorm.DB
}

// NewResourceService creates a ResourceService bound to db.
func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

var resourceListSpec = listSpec{
	searchColumns: []string{"title", "description"},
	typeColumn:    "type",
}

// List returns one page of published resources matching f.
func (s *ResourceService) List(ctx context.Context, f dto.ListFilter) ([]models.CulturalResource, dto.Pagination, error) {
	f.Status = models.StatusPublished
	spec := resourceListSpec
	spec.order = resourceOrder(f.Sort)

	items, total, err := findPage[models.CulturalResource](ctx, s.db, f, spec)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("list resources: %w", err)
	}
	return items, f.Paginate(total), nil
}

// View loads a resource for its detail page and counts the view.
// Drafts are only visible when includeDrafts is set.
func (s *ResourceService) View(ctx context.Context, id uint, includeDrafts bool) (*models.CulturalResource, error) {
	var res models.CulturalResource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			return err
		}
		if res.Status != models.StatusPublished && !includeDrafts {
			return gorm.ErrRecordNotFound
		}
		if err := incrementColumn(tx, &models.CulturalResource{}, id, "view_count"); err != nil {
			return err
		}
		return tx.First(&res, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("view resource %d: %w", id, err)
	}
	return &res, nil
}

// Create stores a new resource built from req.
func (s *ResourceService) Create(ctx context.Context, req dto.CreateResourceRequest) (*models.CulturalResource, error) {
	var res models.CulturalResource
	if err := copier.Copy(&res, &req); err != nil {
		return nil, fmt.Errorf("map resource: %w", err)
	}
	res.Title = utils.SanitizeLine(res.Title)
	if res.Title == "" {
		return nil, ErrInvalidInput
	}
	res.Description = utils.Sanitize(res.Description)
	res.Content = utils.Sanitize(res.Content)
	res.SetTags(req.Tags)
	if res.Status == "" {
		res.Status = models.StatusPublished
	}
	if !models.ValidStatus(res.Status) {
		return nil, ErrInvalidStatus
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&res).Error
	}); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return &res, nil
}

// Update applies the non-nil fields of req. Status may only move from draft to published.
func (s *ResourceService) Update(ctx context.Context, id uint, req dto.UpdateResourceRequest) (*models.CulturalResource, error) {
	var res models.CulturalResource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			return err
		}
		if err := copier.CopyWithOption(&res, &req, copier.Option{IgnoreEmpty: true}); err != nil {
			return fmt.Errorf("map resource: %w", err)
		}
		if req.Title != nil {
			res.Title = utils.SanitizeLine(res.Title)
			if res.Title == "" {
				return ErrInvalidInput
			}
		}
		if req.Description != nil {
			res.Description = utils.Sanitize(res.Description)
		}
		if req.Content != nil {
			res.Content = utils.Sanitize(res.Content)
		}
		if req.Tags != nil {
			res.SetTags(*req.Tags)
		}
		if req.Status != nil {
			next := strings.TrimSpace(*req.Status)
			if !models.ValidStatus(next) || !models.CanTransition(res.Status, next) {
				return ErrInvalidStatus
			}
			res.Status = next
		}
		return tx.Save(&res).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrResourceNotFound
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidStatus):
			return nil, err
		}
		return nil, fmt.Errorf("update resource %d: %w", id, err)
	}
	return &res, nil
}

// Like increments the like counter of a published resource and returns the new value.
func (s *ResourceService) Like(ctx context.Context, id uint) (int64, error) {
	var res models.CulturalResource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "status").First(&res, id).Error; err != nil {
			return err
		}
		if res.Status != models.StatusPublished {
			return gorm.ErrRecordNotFound
		}
		if err := incrementColumn(tx, &models.CulturalResource{}, id, "like_count"); err != nil {
			return err
		}
		return tx.Select("like_count").First(&res, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrResourceNotFound
		}
		return 0, fmt.Errorf("like resource %d: %w", id, err)
	}
	return res.LikeCount, nil
}

// incrementColumn bumps a counter with a single atomic UPDATE.
func incrementColumn(tx *gorm.DB, model interface{}, id uint, column string) error {
	result := tx.Model(model).Where("id = ?", id).UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	utils.CounterBumps.WithLabelValues(result.Statement.Table, column).Inc()
	return nil
}
