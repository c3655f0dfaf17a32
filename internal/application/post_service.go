package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
)

// PostService owns the feed: posts and their embedded likes and comments.
// Every sub-collection mutation loads the post, edits the in-memory sequence
// and writes the whole document back; concurrent edits of the same post are
// last-write-wins. ES is optional and used only for the search endpoint.
type PostService struct {
	Posts  repository.PostRepository
	Users  repository.UserRepository
	Logger *logrus.Logger

	ES      *elasticsearch.Client
	ESIndex string
}

func (s *PostService) post(ctx context.Context, postID string) (*entity.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	p, err := s.Posts.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create writes a post carrying a snapshot of the author's name and avatar.
// The snapshot is never re-synced if the author later changes either.
func (s *PostService) Create(ctx context.Context, userID, text string) (*entity.Post, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p := &entity.Post{
		User:     uid,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Text:     text,
		Likes:    []entity.Like{},
		Comments: []entity.Comment{},
		Date:     time.Now(),
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	s.indexPost(ctx, p)
	return p, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

// Get returns one post by id.
func (s *PostService) Get(ctx context.Context, postID string) (*entity.Post, error) {
	return s.post(ctx, postID)
}

// Delete removes a post; only its author may do so.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	p, err := s.post(ctx, postID)
	if err != nil {
		return err
	}
	if p.User.Hex() != userID {
		return ErrNotAuthorized
	}
	if err := s.Posts.Delete(ctx, p.ID); err != nil {
		return err
	}
	s.unindexPost(ctx, p.ID.Hex())
	return nil
}

// Like prepends a like for the caller. A second like by the same user is
// rejected, never merged; the sequence is unchanged on rejection.
func (s *PostService) Like(ctx context.Context, userID, postID string) ([]entity.Like, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	p, err := s.post(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.LikedBy(uid) {
		return nil, ErrAlreadyLiked
	}
	p.Likes = entity.InsertFront(p.Likes, entity.Like{ID: primitive.NewObjectID(), User: uid})
	if err := s.Posts.Save(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like. A post the caller never liked fails the
// precondition before any search by id happens.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) ([]entity.Like, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	p, err := s.post(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.LikedBy(uid) {
		return nil, ErrNotLiked
	}
	for _, l := range p.Likes {
		if l.User == uid {
			p.Likes, _ = entity.RemoveByKey(p.Likes, l.Key())
			break
		}
	}
	if err := s.Posts.Save(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment prepends a comment carrying the commenter's snapshot.
func (s *PostService) AddComment(ctx context.Context, userID, postID, text string) ([]entity.Comment, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p, err := s.post(ctx, postID)
	if err != nil {
		return nil, err
	}
	c := entity.Comment{
		ID:     primitive.NewObjectID(),
		User:   uid,
		Name:   u.Name,
		Avatar: u.Avatar,
		Text:   text,
		Date:   time.Now(),
	}
	p.Comments = entity.InsertFront(p.Comments, c)
	if err := s.Posts.Save(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// RemoveComment removes one comment by its id after checking the caller owns
// it. Removal is keyed on the comment id, so an author with several comments
// on the same post loses exactly the one addressed.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]entity.Comment, error) {
	p, err := s.post(ctx, postID)
	if err != nil {
		return nil, err
	}
	c, ok := entity.FindByKey(p.Comments, commentID)
	if !ok {
		return nil, ErrCommentNotFound
	}
	if c.User.Hex() != userID {
		return nil, ErrNotAuthorized
	}
	p.Comments, _ = entity.RemoveByKey(p.Comments, commentID)
	if err := s.Posts.Save(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// Search runs a full-text query over indexed posts. Without an ES client it
// returns an empty result set.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"text^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":   p.ID.Hex(),
		"user": p.User.Hex(),
		"name": p.Name,
		"text": p.Text,
		"date": p.Date.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID.Hex()).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID.Hex()).Warn("es index response error")
	}
}

func (s *PostService) unindexPost(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
