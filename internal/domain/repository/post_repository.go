package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
)

// PostRepository defines the interface for post document operations. Like,
// comment and their removals all go through Save, replacing the whole post
// document (last write wins on concurrent edits).
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	Save(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, user primitive.ObjectID) error
}
