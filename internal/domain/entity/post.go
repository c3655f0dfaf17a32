package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a feed entry. Name and Avatar are copied from the author at
// creation time and never re-synced afterwards. Likes and Comments are
// embedded ordered sequences, newest first; the post document is the
// consistency unit for every mutation of them.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User     primitive.ObjectID `bson:"user" json:"user"`
	Name     string             `bson:"name" json:"name"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	Text     string             `bson:"text" json:"text"`
	Likes    []Like             `bson:"likes" json:"likes"`
	Comments []Comment          `bson:"comments" json:"comments"`
	Date     time.Time          `bson:"date" json:"date"`
}

// Like marks one user's like of a post. At most one per user per post.
type Like struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	User primitive.ObjectID `bson:"user" json:"user"`
}

func (l Like) Key() string { return l.ID.Hex() }

// Comment is a reply embedded in a post, with the author snapshot
// denormalized like the post itself.
type Comment struct {
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
	User   primitive.ObjectID `bson:"user" json:"user"`
	Name   string             `bson:"name" json:"name"`
	Avatar string             `bson:"avatar" json:"avatar"`
	Text   string             `bson:"text" json:"text"`
	Date   time.Time          `bson:"date" json:"date"`
}

func (c Comment) Key() string { return c.ID.Hex() }

// LikedBy reports whether user already appears in the likes sequence.
func (p *Post) LikedBy(user primitive.ObjectID) bool {
	for _, l := range p.Likes {
		if l.User == user {
			return true
		}
	}
	return false
}
