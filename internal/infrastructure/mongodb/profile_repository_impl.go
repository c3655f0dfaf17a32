package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, user primitive.ObjectID) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := r.coll.FindOne(ctx, bson.M{"user": user}).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]entity.Profile, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	profiles := []entity.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

// Save replaces the whole profile document. Embedded experience and
// education mutations always come through here with their parent.
func (r *ProfileRepository) Save(ctx context.Context, p *entity.Profile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"user": user})
	return err
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
