package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
)

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	posts := new(mockPostRepo)
	users := new(mockUserRepo)
	svc := &PostService{Posts: posts, Users: users}

	uid := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, uid).Return(&entity.User{
		ID:     uid,
		Name:   "A",
		Avatar: "https://gravatar.com/avatar/x",
	}, nil)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Post) bool {
		return p.User == uid && p.Name == "A" && p.Avatar == "https://gravatar.com/avatar/x"
	})).Return(nil)

	p, err := svc.Create(context.Background(), uid.Hex(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Text)
	assert.NotNil(t, p.Likes)
	assert.NotNil(t, p.Comments)
}

func TestLikeTwiceRejected(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	uid := primitive.NewObjectID()
	post := &entity.Post{
		ID:    primitive.NewObjectID(),
		Likes: []entity.Like{{ID: primitive.NewObjectID(), User: uid}},
	}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	_, err := svc.Like(context.Background(), uid.Hex(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Len(t, post.Likes, 1)
	posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLikePrepends(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	post := &entity.Post{
		ID:    primitive.NewObjectID(),
		Likes: []entity.Like{{ID: primitive.NewObjectID(), User: first}},
	}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Save", mock.Anything, post).Return(nil)

	likes, err := svc.Like(context.Background(), second.Hex(), post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, second, likes[0].User)
	assert.Equal(t, first, likes[1].User)
}

func TestUnlikeNeverLiked(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	uid := primitive.NewObjectID()
	post := &entity.Post{ID: primitive.NewObjectID(), Likes: []entity.Like{}}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	_, err := svc.Unlike(context.Background(), uid.Hex(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrNotLiked)
	posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUnlikeRemovesOwnLike(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()
	post := &entity.Post{
		ID: primitive.NewObjectID(),
		Likes: []entity.Like{
			{ID: primitive.NewObjectID(), User: other},
			{ID: primitive.NewObjectID(), User: mine},
		},
	}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Save", mock.Anything, post).Return(nil)

	likes, err := svc.Unlike(context.Background(), mine.Hex(), post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, other, likes[0].User)
}

func TestAddCommentNewestFirst(t *testing.T) {
	posts := new(mockPostRepo)
	users := new(mockUserRepo)
	svc := &PostService{Posts: posts, Users: users}

	uid := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, uid).Return(&entity.User{ID: uid, Name: "A"}, nil)

	post := &entity.Post{
		ID: primitive.NewObjectID(),
		Comments: []entity.Comment{
			{ID: primitive.NewObjectID(), Text: "C1"},
		},
	}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Save", mock.Anything, post).Return(nil)

	comments, err := svc.AddComment(context.Background(), uid.Hex(), post.ID.Hex(), "C2")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "C2", comments[0].Text)
	assert.Equal(t, "C1", comments[1].Text)
	assert.Equal(t, "A", comments[0].Name)
}

func TestRemoveCommentByID(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	uid := primitive.NewObjectID()
	keep := entity.Comment{ID: primitive.NewObjectID(), User: uid, Text: "keep"}
	drop := entity.Comment{ID: primitive.NewObjectID(), User: uid, Text: "drop"}
	post := &entity.Post{ID: primitive.NewObjectID(), Comments: []entity.Comment{keep, drop}}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Save", mock.Anything, post).Return(nil)

	comments, err := svc.RemoveComment(context.Background(), uid.Hex(), post.ID.Hex(), drop.ID.Hex())
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "keep", comments[0].Text)
}

func TestRemoveCommentMissing(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	uid := primitive.NewObjectID()
	post := &entity.Post{ID: primitive.NewObjectID(), Comments: []entity.Comment{}}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	_, err := svc.RemoveComment(context.Background(), uid.Hex(), post.ID.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestRemoveCommentNotOwner(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	owner := primitive.NewObjectID()
	caller := primitive.NewObjectID()
	c := entity.Comment{ID: primitive.NewObjectID(), User: owner, Text: "theirs"}
	post := &entity.Post{ID: primitive.NewObjectID(), Comments: []entity.Comment{c}}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	_, err := svc.RemoveComment(context.Background(), caller.Hex(), post.ID.Hex(), c.ID.Hex())
	assert.ErrorIs(t, err, ErrNotAuthorized)
	posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeletePostNotOwner(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	owner := primitive.NewObjectID()
	caller := primitive.NewObjectID()
	post := &entity.Post{ID: primitive.NewObjectID(), User: owner}
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	err := svc.Delete(context.Background(), caller.Hex(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrNotAuthorized)
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetPostBadID(t *testing.T) {
	posts := new(mockPostRepo)
	svc := &PostService{Posts: posts}

	_, err := svc.Get(context.Background(), "not-hex")
	assert.ErrorIs(t, err, ErrPostNotFound)

	missing := primitive.NewObjectID()
	posts.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrNotFound)
	_, err = svc.Get(context.Background(), missing.Hex())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSearchWithoutES(t *testing.T) {
	svc := &PostService{Posts: new(mockPostRepo)}

	hits, err := svc.Search(context.Background(), "hello", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
