package models

import "time"

// Comment belongs to a CommunityPost. A nil ParentID marks a top-level comment,
// otherwise it is a reply to another comment of the same post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// IsTopLevel reports whether the comment has no parent.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}
