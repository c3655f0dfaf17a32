package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func comment(text string) Comment {
	return Comment{ID: primitive.NewObjectID(), Text: text}
}

func TestInsertFrontNewestFirst(t *testing.T) {
	c1 := comment("first")
	c2 := comment("second")

	seq := InsertFront([]Comment{c1}, c2)

	require.Len(t, seq, 2)
	assert.Equal(t, "second", seq[0].Text)
	assert.Equal(t, "first", seq[1].Text)
}

func TestFindByKey(t *testing.T) {
	c1 := comment("one")
	c2 := comment("two")
	seq := []Comment{c1, c2}

	got, ok := FindByKey(seq, c2.ID.Hex())
	require.True(t, ok)
	assert.Equal(t, "two", got.Text)

	_, ok = FindByKey(seq, primitive.NewObjectID().Hex())
	assert.False(t, ok)
}

func TestRemoveByKeyPreservesOrder(t *testing.T) {
	c1 := comment("one")
	c2 := comment("two")
	c3 := comment("three")
	seq := []Comment{c1, c2, c3}

	out, removed := RemoveByKey(seq, c2.ID.Hex())
	require.True(t, removed)
	require.Len(t, out, 2)
	assert.Equal(t, "one", out[0].Text)
	assert.Equal(t, "three", out[1].Text)
}

func TestRemoveByKeyAbsentIsNoOp(t *testing.T) {
	c1 := comment("one")
	seq := []Comment{c1}

	out, removed := RemoveByKey(seq, primitive.NewObjectID().Hex())
	assert.False(t, removed)
	assert.Len(t, out, 1)
}

func TestRemoveByKeyRemovesExactlyOne(t *testing.T) {
	// Two entries owned by the same user; removal is keyed on the entry id,
	// so only the addressed one goes.
	user := primitive.NewObjectID()
	c1 := Comment{ID: primitive.NewObjectID(), User: user, Text: "keep"}
	c2 := Comment{ID: primitive.NewObjectID(), User: user, Text: "drop"}

	out, removed := RemoveByKey([]Comment{c1, c2}, c2.ID.Hex())
	require.True(t, removed)
	require.Len(t, out, 1)
	assert.Equal(t, "keep", out[0].Text)
}

func TestPostLikedBy(t *testing.T) {
	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()
	p := &Post{Likes: []Like{{ID: primitive.NewObjectID(), User: u1}}}

	assert.True(t, p.LikedBy(u1))
	assert.False(t, p.LikedBy(u2))
}
