package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
)

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	if p.Likes == nil {
		p.Likes = []entity.Like{}
	}
	if p.Comments == nil {
		p.Comments = []entity.Comment{}
	}
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	posts := []entity.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Save replaces the whole post document; likes and comments ride along with
// their parent.
func (r *PostRepository) Save(ctx context.Context, p *entity.Post) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *PostRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"user": user})
	return err
}

var _ repository.PostRepository = (*PostRepository)(nil)
