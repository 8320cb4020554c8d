package dto

// CreateResourceRequest is the body of POST /resources.
type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Type        string   `json:"type" binding:"required,max=64"`
	Category    string   `json:"category" binding:"max=64"`
	Tags        []string `json:"tags" binding:"max=32,dive,max=64" copier:"-"`
	Author      string   `json:"author" binding:"max=128"`
	Source      string   `json:"source" binding:"max=255"`
	CoverImage  string   `json:"cover_image" binding:"max=512"`
	MediaURL    string   `json:"media_url" binding:"max=512"`
	Priority    int      `json:"priority"`
	Status      string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// UpdateResourceRequest is the body of PUT /resources/{id}. Nil fields are left untouched.
type UpdateResourceRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Type        *string   `json:"type" binding:"omitempty,min=1,max=64"`
	Category    *string   `json:"category" binding:"omitempty,max=64"`
	Tags        *[]string `json:"tags" binding:"omitempty,max=32" copier:"-"`
	Author      *string   `json:"author" binding:"omitempty,max=128"`
	Source      *string   `json:"source" binding:"omitempty,max=255"`
	CoverImage  *string   `json:"cover_image" binding:"omitempty,max=512"`
	MediaURL    *string   `json:"media_url" binding:"omitempty,max=512"`
	Priority    *int      `json:"priority"`
	Status      *string   `json:"status" binding:"omitempty,oneof=draft published" copier:"-"`
}
