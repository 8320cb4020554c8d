package models

import (
	"strings"
	"time"
)

// TagSeparator joins CulturalResource tags in storage.
const TagSeparator = ","

// CulturalResource is an editorial article. Author is a display name, not a user reference.
type CulturalResource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	Type        string    `gorm:"size:64;index" json:"type"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Tags        string    `gorm:"size:512" json:"tags"`
	Author      string    `gorm:"size:128" json:"author"`
	Source      string    `gorm:"size:255" json:"source"`
	CoverImage  string    `gorm:"size:512" json:"cover_image"`
	MediaURL    string    `gorm:"size:512" json:"media_url"`
	Priority    int       `gorm:"not null;default:0" json:"priority"`
	Status      string    `gorm:"size:16;index;not null;default:'published'" json:"status"`
	ViewCount   int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount   int64     `gorm:"not null;default:0" json:"like_count"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TagList splits the stored tags; an empty string yields an empty list.
func (r *CulturalResource) TagList() []string {
	if r.Tags == "" {
		return []string{}
	}
	return strings.Split(r.Tags, TagSeparator)
}

// SetTags strips separators inside each tag, trims it, drops empty ones and stores the rest joined.
func (r *CulturalResource) SetTags(tags []string) {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.ReplaceAll(t, TagSeparator, ""))
		if t == "" {
			continue
		}
		kept = append(kept, t)
	}
	r.Tags = strings.Join(kept, TagSeparator)
}
