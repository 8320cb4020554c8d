package views

import (
	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
)

// ResourceSummary is one entry of GET /resources.
type ResourceSummary struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Summary     string   `json:"summary"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CoverImage  string   `json:"cover_image"`
	Priority    int      `json:"priority"`
	ViewCount   int64    `json:"view_count"`
	LikeCount   int64    `json:"like_count"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ResourceDetail is the body of GET /resources/{id}.
type ResourceDetail struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Source      string   `json:"source"`
	CoverImage  string   `json:"cover_image"`
	MediaURL    string   `json:"media_url"`
	Priority    int      `json:"priority"`
	Status      string   `json:"status"`
	ViewCount   int64    `json:"view_count"`
	LikeCount   int64    `json:"like_count"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ResourcePage is a page of resource summaries.
type ResourcePage struct {
	Resources  []ResourceSummary `json:"resources"`
	Pagination dto.Pagination    `json:"pagination"`
}

// NewResourceSummary projects r for listings.
func NewResourceSummary(r *models.CulturalResource) ResourceSummary {
	return ResourceSummary{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Summary:     Summarize(r.Content),
		Type:        r.Type,
		Category:    r.Category,
		Tags:        r.TagList(),
		CoverImage:  r.CoverImage,
		Priority:    r.Priority,
		ViewCount:   r.ViewCount,
		LikeCount:   r.LikeCount,
		CreatedAt:   FormatTime(r.CreatedAt),
		UpdatedAt:   FormatTime(r.UpdatedAt),
	}
}

// NewResourceDetail projects r for the detail view.
func NewResourceDetail(r *models.CulturalResource) ResourceDetail {
	return ResourceDetail{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Type:        r.Type,
		Category:    r.Category,
		Tags:        r.TagList(),
		Author:      r.Author,
		Source:      r.Source,
		CoverImage:  r.CoverImage,
		MediaURL:    r.MediaURL,
		Priority:    r.Priority,
		Status:      r.Status,
		ViewCount:   r.ViewCount,
		LikeCount:   r.LikeCount,
		CreatedAt:   FormatTime(r.CreatedAt),
		UpdatedAt:   FormatTime(r.UpdatedAt),
	}
}

// NewResourcePage projects a listing page.
func NewResourcePage(items []models.CulturalResource, p dto.Pagination) ResourcePage {
	out := ResourcePage{Resources: make([]ResourceSummary, 0, len(items)), Pagination: p}
	for i := range items {
		out.Resources = append(out.Resources, NewResourceSummary(&items[i]))
	}
	return out
}
