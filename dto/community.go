package dto

// CreatePostRequest is the body of POST /community/posts.
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"max=64"`
	Status   string `json:"status" binding:"omitempty,oneof=draft published"`
}

// CreateCommentRequest is the body of POST /community/posts/{id}/comments.
// ReplyTo is the legacy name of ParentID.
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,max=5000"`
	ParentID *uint  `json:"parent_id" binding:"omitempty,min=1"`
	ReplyTo  *uint  `json:"reply_to" binding:"omitempty,min=1"`
}

// Parent returns the requested parent comment id, or nil for a top-level comment.
func (r CreateCommentRequest) Parent() *uint {
	if r.ParentID != nil {
		return r.ParentID
	}
	return r.ReplyTo
}
