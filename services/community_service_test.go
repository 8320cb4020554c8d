package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
)

func TestCreatePost_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	author := createUser(t, db, "writer")

	post, err := svc.CreatePost(context.Background(), author.ID, dto.CreatePostRequest{
		Title:   "  Orange Isle  ",
		Content: "A walk along the Xiang river",
	})
	require.NoError(t, err)
	assert.Equal(t, "Orange Isle", post.Title)
	assert.Equal(t, models.DefaultPostCategory, post.Category)
	assert.Equal(t, models.StatusPublished, post.Status)

	_, err = svc.CreatePost(context.Background(), 777, dto.CreatePostRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreatePost_InactiveAuthorRejected(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "banned")
	require.NoError(t, db.Model(author).Update("active", false).Error)

	_, err := NewCommunityService(db).CreatePost(context.Background(), author.ID, dto.CreatePostRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestListPosts_PublishedOnlyWithSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	ctx := context.Background()
	author := createUser(t, db, "poster")
	createPost(t, db, author.ID, "Stinky tofu", "Best stall in Changsha", models.StatusPublished)
	createPost(t, db, author.ID, "Rice noodles", "Breakfast notes", models.StatusPublished)
	createPost(t, db, author.ID, "Stinky tofu draft", "unfinished", models.StatusDraft)

	items, pg, err := svc.ListPosts(ctx, dto.ListFilter{Page: dto.NewPage(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pg.Total)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Author)
	assert.Equal(t, "poster", items[0].Author.Username)

	items, _, err = svc.ListPosts(ctx, dto.ListFilter{Page: dto.NewPage(1, 10), Search: "Changsha"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Stinky tofu", items[0].Title)
}

func TestViewPost_VisibilityAndCounter(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	ctx := context.Background()
	author := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	draft := createPost(t, db, author.ID, "draft", "body", models.StatusDraft)

	_, err := svc.ViewPost(ctx, draft.ID, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.ViewPost(ctx, draft.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	detail, err := svc.ViewPost(ctx, draft.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Post.ViewCount)
	require.NotNil(t, detail.Post.Author)
	assert.Equal(t, "owner", detail.Post.Author.Username)
	assert.Empty(t, detail.Threads)

	_, err = svc.ViewPost(ctx, 31337, author.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAddComment_BumpsCountInSameTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	ctx := context.Background()
	author := createUser(t, db, "alice")
	post := createPost(t, db, author.ID, "Yuelu", "Academy visit", models.StatusPublished)

	top, err := svc.AddComment(ctx, post.ID, author.ID, dto.CreateCommentRequest{Content: "great trip"})
	require.NoError(t, err)
	assert.Nil(t, top.ParentID)
	require.NotNil(t, top.Author)
	assert.Equal(t, "alice", top.Author.Username)

	reply, err := svc.AddComment(ctx, post.ID, author.ID, dto.CreateCommentRequest{Content: "agreed", ParentID: &top.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, top.ID, *reply.ParentID)

	// reply to a reply is stored under the thread root
	nested, err := svc.AddComment(ctx, post.ID, author.ID, dto.CreateCommentRequest{Content: "me too", ReplyTo: &reply.ID})
	require.NoError(t, err)
	require.NotNil(t, nested.ParentID)
	assert.Equal(t, top.ID, *nested.ParentID)

	var stored models.CommunityPost
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, int64(3), stored.CommentCount)

	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&n).Error)
	assert.Equal(t, stored.CommentCount, n)

	detail, err := svc.ViewPost(ctx, post.ID, 0)
	require.NoError(t, err)
	require.Len(t, detail.Threads, 1)
	assert.Len(t, detail.Threads[0].Replies, 2)
}

func TestAddComment_CrossPostParentRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	ctx := context.Background()
	author := createUser(t, db, "bob")
	postA := createPost(t, db, author.ID, "A", "a", models.StatusPublished)
	postB := createPost(t, db, author.ID, "B", "b", models.StatusPublished)

	onA, err := svc.AddComment(ctx, postA.ID, author.ID, dto.CreateCommentRequest{Content: "on a"})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, postB.ID, author.ID, dto.CreateCommentRequest{Content: "wrong thread", ParentID: &onA.ID})
	assert.ErrorIs(t, err, ErrParentCommentNotFound)

	missing := uint(9999)
	_, err = svc.AddComment(ctx, postB.ID, author.ID, dto.CreateCommentRequest{Content: "ghost", ParentID: &missing})
	assert.ErrorIs(t, err, ErrParentCommentNotFound)

	var stored models.CommunityPost
	require.NoError(t, db.First(&stored, postB.ID).Error)
	assert.Equal(t, int64(0), stored.CommentCount)
	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", postB.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAddComment_MissingPostAndBlankContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	author := createUser(t, db, "carol")

	_, err := svc.AddComment(context.Background(), 404, author.ID, dto.CreateCommentRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	post := createPost(t, db, author.ID, "p", "c", models.StatusPublished)
	_, err = svc.AddComment(context.Background(), post.ID, author.ID, dto.CreateCommentRequest{Content: "<script></script>"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLikePost(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db)
	author := createUser(t, db, "dave")
	post := createPost(t, db, author.ID, "p", strings.Repeat("x", 10), models.StatusPublished)

	likes, err := svc.LikePost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	draft := createPost(t, db, author.ID, "d", "c", models.StatusDraft)
	_, err = svc.LikePost(context.Background(), draft.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
