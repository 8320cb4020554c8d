package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
)

const concurrentRequests = 24

// runConcurrently starts n calls at once and returns every error they produced.
func runConcurrently(n int, fn func(i int) error) []error {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		errs  []error
		start = make(chan struct{})
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			if err := fn(i); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}

func TestConcurrentLikesAndViewsAreNotLost(t *testing.T) {
	db := newSharedTestDB(t, 8)
	svc := NewResourceService(db)
	res := createResource(t, db, "contended", 0)
	ctx := context.Background()

	errs := runConcurrently(concurrentRequests, func(i int) error {
		if i%2 == 0 {
			_, err := svc.Like(ctx, res.ID)
			return err
		}
		_, err := svc.View(ctx, res.ID, false)
		return err
	})
	require.Empty(t, errs)

	var stored models.CulturalResource
	require.NoError(t, db.First(&stored, res.ID).Error)
	assert.Equal(t, int64(concurrentRequests/2), stored.LikeCount)
	assert.Equal(t, int64(concurrentRequests/2), stored.ViewCount)
}

func TestConcurrentCommentsKeepCommentCount(t *testing.T) {
	db := newSharedTestDB(t, 8)
	svc := NewCommunityService(db)
	author := createUser(t, db, "crowd")
	post := createPost(t, db, author.ID, "busy", "thread", models.StatusPublished)
	ctx := context.Background()

	errs := runConcurrently(concurrentRequests, func(i int) error {
		_, err := svc.AddComment(ctx, post.ID, author.ID, dto.CreateCommentRequest{Content: fmt.Sprintf("comment %d", i)})
		return err
	})
	require.Empty(t, errs)

	var stored models.CommunityPost
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, int64(concurrentRequests), stored.CommentCount)

	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&n).Error)
	assert.Equal(t, stored.CommentCount, n)

	likes := runConcurrently(concurrentRequests, func(int) error {
		_, err := svc.LikePost(ctx, post.ID)
		return err
	})
	require.Empty(t, likes)
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, int64(concurrentRequests), stored.LikeCount)
}
