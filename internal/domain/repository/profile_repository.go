package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
)

// ProfileRepository defines the interface for profile document operations.
// Save replaces the whole document; embedded experience and education are
// never written independently of their parent.
type ProfileRepository interface {
	GetByUser(ctx context.Context, user primitive.ObjectID) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	Create(ctx context.Context, p *entity.Profile) error
	Save(ctx context.Context, p *entity.Profile) error
	DeleteByUser(ctx context.Context, user primitive.ObjectID) error
}
