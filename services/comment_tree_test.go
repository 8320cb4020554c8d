package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/huxiang/models"
)

func ptr(v uint) *uint { return &v }

func TestBuildCommentTree_OrdersThreadsAndReplies(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 1, Content: "first", CreatedAt: base},
		{ID: 2, Content: "second", CreatedAt: base.Add(time.Minute)},
		{ID: 3, Content: "late reply", ParentID: ptr(1), CreatedAt: base.Add(3 * time.Minute)},
		{ID: 4, Content: "early reply", ParentID: ptr(1), CreatedAt: base.Add(2 * time.Minute)},
	}

	threads := BuildCommentTree(comments)
	require.Len(t, threads, 2)
	assert.Equal(t, uint(2), threads[0].Comment.ID)
	assert.Equal(t, uint(1), threads[1].Comment.ID)

	assert.Empty(t, threads[0].Replies)
	assert.NotNil(t, threads[0].Replies)
	require.Len(t, threads[1].Replies, 2)
	assert.Equal(t, uint(4), threads[1].Replies[0].ID)
	assert.Equal(t, uint(3), threads[1].Replies[1].ID)
}

func TestBuildCommentTree_TieBreakOnID(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 10, CreatedAt: at},
		{ID: 11, CreatedAt: at},
		{ID: 12, ParentID: ptr(10), CreatedAt: at},
		{ID: 13, ParentID: ptr(10), CreatedAt: at},
	}

	threads := BuildCommentTree(comments)
	require.Len(t, threads, 2)
	assert.Equal(t, uint(11), threads[0].Comment.ID)
	assert.Equal(t, uint(10), threads[1].Comment.ID)
	require.Len(t, threads[1].Replies, 2)
	assert.Equal(t, uint(12), threads[1].Replies[0].ID)
	assert.Equal(t, uint(13), threads[1].Replies[1].ID)
}

func TestBuildCommentTree_DeepChainAttachesToRoot(t *testing.T) {
	at := time.Now()
	comments := []models.Comment{
		{ID: 1, CreatedAt: at},
		{ID: 2, ParentID: ptr(1), CreatedAt: at.Add(time.Second)},
		{ID: 3, ParentID: ptr(2), CreatedAt: at.Add(2 * time.Second)},
	}

	threads := BuildCommentTree(comments)
	require.Len(t, threads, 1)
	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, uint(2), threads[0].Replies[0].ID)
	assert.Equal(t, uint(3), threads[0].Replies[1].ID)
}

func TestBuildCommentTree_BrokenChainsArePromoted(t *testing.T) {
	at := time.Now()
	comments := []models.Comment{
		{ID: 1, ParentID: ptr(99), CreatedAt: at},
		{ID: 2, ParentID: ptr(3), CreatedAt: at.Add(time.Second)},
		{ID: 3, ParentID: ptr(2), CreatedAt: at.Add(2 * time.Second)},
	}

	threads := BuildCommentTree(comments)
	require.Len(t, threads, 3)
	ids := []uint{threads[0].Comment.ID, threads[1].Comment.ID, threads[2].Comment.ID}
	assert.Equal(t, []uint{3, 2, 1}, ids)
	for _, th := range threads {
		assert.Empty(t, th.Replies)
	}
}

func TestBuildCommentTree_Empty(t *testing.T) {
	threads := BuildCommentTree(nil)
	assert.NotNil(t, threads)
	assert.Empty(t, threads)
}
