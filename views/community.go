package views

import (
	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/services"
)

// PostSummary is one entry of GET /community/posts.
type PostSummary struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Author       AuthorSummary `json:"author"`
	Category     string        `json:"category"`
	ViewCount    int64         `json:"view_count"`
	LikeCount    int64         `json:"like_count"`
	CommentCount int64         `json:"comment_count"`
	CreatedAt    string        `json:"created_at"`
}

// PostPage is a page of post summaries.
type PostPage struct {
	Posts      []PostSummary  `json:"posts"`
	Pagination dto.Pagination `json:"pagination"`
}

// Reply is a second-level comment.
type Reply struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	Author    AuthorSummary `json:"author"`
	ParentID  uint          `json:"parent_id"`
	CreatedAt string        `json:"created_at"`
}

// CommentNode is a top-level comment with its replies.
type CommentNode struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	Author    AuthorSummary `json:"author"`
	CreatedAt string        `json:"created_at"`
	Replies   []Reply       `json:"replies"`
}

// PostDetail is the body of GET /community/posts/{id}.
type PostDetail struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Author       AuthorProfile `json:"author"`
	Category     string        `json:"category"`
	Status       string        `json:"status"`
	ViewCount    int64         `json:"view_count"`
	LikeCount    int64         `json:"like_count"`
	CommentCount int64         `json:"comment_count"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	Comments     []CommentNode `json:"comments"`
}

// NewPostSummary projects p for listings.
func NewPostSummary(p *models.CommunityPost) PostSummary {
	return PostSummary{
		ID:           p.ID,
		Title:        p.Title,
		Summary:      Summarize(p.Content),
		Author:       NewAuthorSummary(p.AuthorID, p.Author),
		Category:     p.Category,
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    FormatTime(p.CreatedAt),
	}
}

// NewPostPage projects a listing page.
func NewPostPage(items []models.CommunityPost, pg dto.Pagination) PostPage {
	out := PostPage{Posts: make([]PostSummary, 0, len(items)), Pagination: pg}
	for i := range items {
		out.Posts = append(out.Posts, NewPostSummary(&items[i]))
	}
	return out
}

// NewPostDetail projects a post with its comment threads.
func NewPostDetail(d *services.PostDetail) PostDetail {
	p := &d.Post
	out := PostDetail{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Author:       NewAuthorProfile(p.AuthorID, p.Author),
		Category:     p.Category,
		Status:       p.Status,
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    FormatTime(p.CreatedAt),
		UpdatedAt:    FormatTime(p.UpdatedAt),
		Comments:     make([]CommentNode, 0, len(d.Threads)),
	}
	for i := range d.Threads {
		out.Comments = append(out.Comments, NewCommentNode(&d.Threads[i]))
	}
	return out
}

// NewCommentNode projects one thread.
func NewCommentNode(t *services.CommentThread) CommentNode {
	c := &t.Comment
	node := CommentNode{
		ID:        c.ID,
		Content:   c.Content,
		Author:    NewAuthorSummary(c.AuthorID, c.Author),
		CreatedAt: FormatTime(c.CreatedAt),
		Replies:   make([]Reply, 0, len(t.Replies)),
	}
	for i := range t.Replies {
		node.Replies = append(node.Replies, NewReply(&t.Replies[i], c.ID))
	}
	return node
}

// NewReply projects a reply shown under the thread rooted at rootID.
func NewReply(c *models.Comment, rootID uint) Reply {
	return Reply{
		ID:        c.ID,
		Content:   c.Content,
		Author:    NewAuthorSummary(c.AuthorID, c.Author),
		ParentID:  rootID,
		CreatedAt: FormatTime(c.CreatedAt),
	}
}
