// Package render walks comment trees for presentation. It only borrows
// the comment pointers; every mutation goes back through the service.
package render

import (
	"sync"

	"github.com/Kotlang/socialClient/models"
)

// DefaultMaxDepth bounds how deep reply chains are presented. Deeper
// replies still exist in the data, they just aren't traversed.
const DefaultMaxDepth = 5

// Handlers are the actions a presenter can offer on a comment. The
// reply handler receives the acting comment's id as the parent for the
// new reply.
type Handlers struct {
	OnReply  func(parentId, content string) error
	OnLike   func(commentId string)
	OnDelete func(commentId string) error
}

// Visitor receives each traversed comment with its depth, root at 0.
type Visitor func(comment *models.CommentModel, depth int)

// Walk traverses a comment and its replies depth-first. Replies of a
// comment sitting at maxDepth are not visited.
func Walk(comment *models.CommentModel, maxDepth int, visit Visitor) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	walk(comment, 0, maxDepth, visit)
}

func walk(comment *models.CommentModel, depth, maxDepth int, visit Visitor) {
	visit(comment, depth)
	if depth >= maxDepth {
		return
	}
	for _, reply := range comment.Replies {
		walk(reply, depth+1, maxDepth, visit)
	}
}

// LikeTracker keeps the viewer's like state locally. The backend has no
// comment-like endpoint, so nothing here persists or leaves the client.
type LikeTracker struct {
	mu    sync.Mutex
	liked map[string]bool
}

func NewLikeTracker() *LikeTracker {
	return &LikeTracker{liked: map[string]bool{}}
}

// ToggleLike flips the viewer's like on a comment and returns the new
// liked state.
func (t *LikeTracker) ToggleLike(commentId string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.liked[commentId] {
		delete(t.liked, commentId)
		return false
	}
	t.liked[commentId] = true
	return true
}

func (t *LikeTracker) Liked(commentId string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liked[commentId]
}

// LikesCount is the displayed count: the server counter plus the local
// like, never below zero.
func (t *LikeTracker) LikesCount(comment *models.CommentModel) int64 {
	count := comment.LikesCount
	if t.Liked(comment.CommentId) {
		count++
	}
	if count < 0 {
		count = 0
	}
	return count
}
