package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

// CommunityService manages community posts and their comments.
type CommunityService struct {
	db *gorm.DB
}

// NewCommunityService creates a CommunityService bound to db.
func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

var postListSpec = listSpec{
	searchColumns: []string{"title", "content"},
	order:         []string{"created_at DESC", "id DESC"},
	preloads:      []string{"Author"},
}

// PostDetail is a post together with its comment threads.
type PostDetail struct {
	Post    models.CommunityPost
	Threads []CommentThread
}

// ListPosts returns one page of published posts with their authors.
func (s *CommunityService) ListPosts(ctx context.Context, f dto.ListFilter) ([]models.CommunityPost, dto.Pagination, error) {
	f.Status = models.StatusPublished
	f.Type = ""
	items, total, err := findPage[models.CommunityPost](ctx, s.db, f, postListSpec)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("list posts: %w", err)
	}
	return items, f.Paginate(total), nil
}

// ViewPost loads a post with its comment tree and counts the view.
// Posts that are not published are only visible to their author (viewerID 0 means anonymous).
func (s *CommunityService) ViewPost(ctx context.Context, id, viewerID uint) (*PostDetail, error) {
	var detail PostDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.CommunityPost
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if post.Status != models.StatusPublished && (viewerID == 0 || viewerID != post.AuthorID) {
			return gorm.ErrRecordNotFound
		}
		if err := incrementColumn(tx, &models.CommunityPost{}, id, "view_count"); err != nil {
			return err
		}
		if err := tx.Preload("Author").First(&detail.Post, id).Error; err != nil {
			return err
		}

		var comments []models.Comment
		if err := tx.Preload("Author").Where("post_id = ?", id).Find(&comments).Error; err != nil {
			return fmt.Errorf("load comments: %w", err)
		}
		detail.Threads = BuildCommentTree(comments)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("view post %d: %w", id, err)
	}
	return &detail, nil
}

// CreatePost stores a new post written by authorID.
func (s *CommunityService) CreatePost(ctx context.Context, authorID uint, req dto.CreatePostRequest) (*models.CommunityPost, error) {
	post := models.CommunityPost{
		Title:    utils.SanitizeLine(req.Title),
		Content:  utils.Sanitize(req.Content),
		AuthorID: authorID,
		Category: req.Category,
		Status:   req.Status,
	}
	if post.Title == "" || post.Content == "" {
		return nil, ErrInvalidInput
	}
	if post.Category == "" {
		post.Category = models.DefaultPostCategory
	}
	if post.Status == "" {
		post.Status = models.StatusPublished
	}
	if !models.ValidStatus(post.Status) {
		return nil, ErrInvalidStatus
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireActiveUser(tx, authorID); err != nil {
			return err
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUserInactive) {
			return nil, err
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &post, nil
}

// LikePost increments the like counter of a published post and returns the new value.
func (s *CommunityService) LikePost(ctx context.Context, id uint) (int64, error) {
	var post models.CommunityPost
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "status").First(&post, id).Error; err != nil {
			return err
		}
		if post.Status != models.StatusPublished {
			return gorm.ErrRecordNotFound
		}
		if err := incrementColumn(tx, &models.CommunityPost{}, id, "like_count"); err != nil {
			return err
		}
		return tx.Select("like_count").First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, fmt.Errorf("like post %d: %w", id, err)
	}
	return post.LikeCount, nil
}

// AddComment stores a comment or reply on postID and bumps the post's comment_count in the
// same transaction. A reply to a reply is attached to the thread's top-level comment.
func (s *CommunityService) AddComment(ctx context.Context, postID, authorID uint, req dto.CreateCommentRequest) (*models.Comment, error) {
	content := utils.Sanitize(req.Content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	comment := models.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireActiveUser(tx, authorID); err != nil {
			return err
		}

		var post models.CommunityPost
		if err := tx.Select("id", "status", "author_id").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if post.Status != models.StatusPublished && post.AuthorID != authorID {
			return ErrPostNotFound
		}

		if parentID := req.Parent(); parentID != nil {
			rootID, err := threadRoot(tx, postID, *parentID)
			if err != nil {
				return err
			}
			comment.ParentID = &rootID
		}

		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		if err := incrementColumn(tx, &models.CommunityPost{}, postID, "comment_count"); err != nil {
			return err
		}
		return tx.Preload("Author").First(&comment, comment.ID).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrParentCommentNotFound),
			errors.Is(err, ErrUserNotFound), errors.Is(err, ErrUserInactive):
			return nil, err
		}
		return nil, fmt.Errorf("add comment to post %d: %w", postID, err)
	}
	return &comment, nil
}

// maxThreadDepth bounds the parent walk in threadRoot.
const maxThreadDepth = 64

// threadRoot returns the top-level ancestor of parentID, which must belong to postID.
func threadRoot(tx *gorm.DB, postID, parentID uint) (uint, error) {
	seen := map[uint]bool{}
	id := parentID
	for depth := 0; depth < maxThreadDepth; depth++ {
		if seen[id] {
			return 0, ErrParentCommentNotFound
		}
		seen[id] = true

		var parent models.Comment
		err := tx.Select("id", "post_id", "parent_id").Where("id = ? AND post_id = ?", id, postID).First(&parent).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrParentCommentNotFound
			}
			return 0, err
		}
		if parent.ParentID == nil {
			return parent.ID, nil
		}
		id = *parent.ParentID
	}
	return 0, ErrParentCommentNotFound
}

func requireActiveUser(tx *gorm.DB, userID uint) error {
	var user models.User
	if err := tx.Select("id", "active").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.Active {
		return ErrUserInactive
	}
	return nil
}
