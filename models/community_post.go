package models

import "time"

// DefaultPostCategory is used when a post is created without a category.
const DefaultPostCategory = "discussion"

// CommunityPost is a forum post written by a user.
// CommentCount is denormalized and must match the number of associated comments.
type CommunityPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	AuthorID     uint      `gorm:"index;not null" json:"author_id"`
	Category     string    `gorm:"size:64;index;not null;default:'discussion'" json:"category"`
	Status       string    `gorm:"size:16;index;not null;default:'published'" json:"status"`
	ViewCount    int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount    int64     `gorm:"not null;default:0" json:"like_count"`
	CommentCount int64     `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"-"`
}
