package render

import (
	"strings"
	"testing"

	"github.com/Kotlang/socialClient/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds a reply chain of the given length, root first.
func chain(length int) *models.CommentModel {
	root := &models.CommentModel{CommentId: "c0", Content: "depth 0"}
	current := root
	for i := 1; i < length; i++ {
		child := &models.CommentModel{CommentId: "c" + strings.Repeat("x", i), Content: "deeper"}
		current.Replies = []*models.CommentModel{child}
		current = child
	}
	return root
}

func TestWalkStopsAtMaxDepth(t *testing.T) {
	root := chain(10)

	deepest := -1
	visited := 0
	Walk(root, 5, func(c *models.CommentModel, depth int) {
		visited++
		if depth > deepest {
			deepest = depth
		}
	})

	assert.Equal(t, 5, deepest)
	assert.Equal(t, 6, visited)
}

func TestWalkDefaultsMaxDepth(t *testing.T) {
	root := chain(10)

	deepest := -1
	Walk(root, 0, func(c *models.CommentModel, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})

	assert.Equal(t, DefaultMaxDepth, deepest)
}

func TestWalkVisitsSiblingsInOrder(t *testing.T) {
	root := &models.CommentModel{CommentId: "c1", Replies: []*models.CommentModel{
		{CommentId: "c2"},
		{CommentId: "c3"},
	}}

	order := []string{}
	Walk(root, DefaultMaxDepth, func(c *models.CommentModel, depth int) {
		order = append(order, c.CommentId)
	})

	assert.Equal(t, []string{"c1", "c2", "c3"}, order)
}

func TestToggleLikeFlipsState(t *testing.T) {
	likes := NewLikeTracker()

	assert.True(t, likes.ToggleLike("c1"))
	assert.True(t, likes.Liked("c1"))
	assert.False(t, likes.ToggleLike("c1"))
	assert.False(t, likes.Liked("c1"))
}

func TestLikesCountTracksLocalLike(t *testing.T) {
	likes := NewLikeTracker()
	comment := &models.CommentModel{CommentId: "c1", LikesCount: 2}

	assert.Equal(t, int64(2), likes.LikesCount(comment))
	likes.ToggleLike("c1")
	assert.Equal(t, int64(3), likes.LikesCount(comment))
	likes.ToggleLike("c1")
	assert.Equal(t, int64(2), likes.LikesCount(comment))
}

func TestLikesCountNeverNegative(t *testing.T) {
	likes := NewLikeTracker()
	comment := &models.CommentModel{CommentId: "c1", LikesCount: 0}

	likes.ToggleLike("c1")
	likes.ToggleLike("c1")
	assert.Equal(t, int64(0), likes.LikesCount(comment))
}

func TestRenderPostShowsDeleteOnlyForOwnComments(t *testing.T) {
	renderer := NewTreeRenderer("u1")
	comments := []*models.CommentModel{
		{CommentId: "c1", CreatorId: "u1", Content: "mine", Author: models.Author{DisplayName: "Me"}},
		{CommentId: "c2", CreatorId: "u2", Content: "theirs", Author: models.Author{DisplayName: "Them"}},
	}

	out := renderer.RenderPost(comments)

	mine := strings.Index(out, "mine")
	theirs := strings.Index(out, "theirs")
	require.Greater(t, theirs, mine)
	assert.Contains(t, out[:theirs], "[delete]")
	assert.NotContains(t, out[theirs:], "[delete]")
}

func TestRenderPostEmptyList(t *testing.T) {
	renderer := NewTreeRenderer("u1")
	assert.Contains(t, renderer.RenderPost(nil), "No comments yet.")
}

func TestRenderPostMarksHiddenReplies(t *testing.T) {
	renderer := NewTreeRenderer("u1")
	renderer.MaxDepth = 1
	root := chain(4)

	out := renderer.RenderPost([]*models.CommentModel{root})

	assert.Contains(t, out, "more replies")
}
