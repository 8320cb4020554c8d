package services

import (
	"sort"

	"github.com/cppla/huxiang/models"
)

// CommentThread is a top-level comment with its direct replies.
type CommentThread struct {
	Comment models.Comment
	Replies []models.Comment
}

// BuildCommentTree groups a post's flat comments into two-level threads.
//
// Threads are ordered newest first and replies oldest first, both with id as tie-break.
// A reply nested deeper than one level is attached to its top-level ancestor. A comment
// whose parent chain is broken (missing parent or a loop) is promoted to a thread of its own.
func BuildCommentTree(comments []models.Comment) []CommentThread {
	byID := make(map[uint]*models.Comment, len(comments))
	for i := range comments {
		byID[comments[i].ID] = &comments[i]
	}

	threads := make([]CommentThread, 0)
	index := make(map[uint]int)
	replies := make(map[uint][]models.Comment)

	for i := range comments {
		c := comments[i]
		root, ok := rootOf(&c, byID)
		if !ok || root == c.ID {
			index[c.ID] = len(threads)
			threads = append(threads, CommentThread{Comment: c})
			continue
		}
		replies[root] = append(replies[root], c)
	}

	for root, rs := range replies {
		threads[index[root]].Replies = rs
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return newerFirst(threads[i].Comment, threads[j].Comment)
	})
	for i := range threads {
		if threads[i].Replies == nil {
			threads[i].Replies = []models.Comment{}
		}
		rs := threads[i].Replies
		sort.SliceStable(rs, func(a, b int) bool {
			return newerFirst(rs[b], rs[a])
		})
	}
	return threads
}

// rootOf walks parent links up to the top-level ancestor of c.
// It reports false when a parent is missing or the chain loops.
func rootOf(c *models.Comment, byID map[uint]*models.Comment) (uint, bool) {
	seen := map[uint]bool{c.ID: true}
	cur := c
	for cur.ParentID != nil {
		parent, ok := byID[*cur.ParentID]
		if !ok || seen[parent.ID] {
			return 0, false
		}
		seen[parent.ID] = true
		cur = parent
	}
	return cur.ID, true
}

func newerFirst(a, b models.Comment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
