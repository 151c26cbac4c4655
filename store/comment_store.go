// Package store holds the client-side comment cache. It is purely
// in-memory; the sync operations in the service package are the only
// writers, and they reconcile it against the backend after every call.
package store

import (
	"sync"

	"github.com/Kotlang/socialClient/models"
	"github.com/thoas/go-funk"
)

// CommentStore maps a post id to its comment tree as of the last sync.
// Top-level comments carry their direct replies; deeper nesting lives in
// the nested models, not in the map.
//
// Concurrent fetches for the same post are not sequenced: the last
// response to resolve wins the cache slot. Reads never fail and never
// trigger a fetch.
type CommentStore struct {
	mu             sync.RWMutex
	commentsByPost map[string][]*models.CommentModel
}

func NewCommentStore() *CommentStore {
	return &CommentStore{
		commentsByPost: map[string][]*models.CommentModel{},
	}
}

// GetComments returns the cached top-level comments for a post, or an
// empty slice if the post was never fetched. Callers borrow the comment
// pointers for display only; mutations go through the service layer.
func (s *CommentStore) GetComments(postId string) []*models.CommentModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := s.commentsByPost[postId]
	out := make([]*models.CommentModel, len(comments))
	copy(out, comments)
	return out
}

// Replace swaps the whole cached list for a post with a fresh fetch
// result. No merging with the previous value.
func (s *CommentStore) Replace(postId string, comments []*models.CommentModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commentsByPost[postId] = comments
}

// PrependTopLevel puts a newly created comment at the head of the post's
// list, newest first. A comment id already present in the tree is
// skipped so a double-submit cannot duplicate a node.
func (s *CommentStore) PrependTopLevel(postId string, comment *models.CommentModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(postId, comment.CommentId) {
		return
	}
	s.commentsByPost[postId] = append([]*models.CommentModel{comment}, s.commentsByPost[postId]...)
}

// AppendReply attaches a reply under its parent comment, oldest first.
// Returns false when the parent is not in the cached tree for that post;
// the reply is then not visible locally until the next fetch.
func (s *CommentStore) AppendReply(postId, parentId string, reply *models.CommentModel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(postId, reply.CommentId) {
		return true
	}
	parent, ok := funk.Find(s.commentsByPost[postId], func(c *models.CommentModel) bool {
		return c.CommentId == parentId
	}).(*models.CommentModel)
	if !ok {
		return false
	}
	parent.Replies = append(parent.Replies, reply)
	return true
}

// UpdateContent rewrites the content of a comment wherever it is cached,
// across every post, top level and one reply level deep. The comment id
// is the identity; the post context is not consulted.
func (s *CommentStore) UpdateContent(commentId, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, comments := range s.commentsByPost {
		for _, comment := range comments {
			if comment.CommentId == commentId {
				comment.Content = content
				found = true
				continue
			}
			for _, reply := range comment.Replies {
				if reply.CommentId == commentId {
					reply.Content = content
					found = true
				}
			}
		}
	}
	return found
}

// Remove deletes a comment from wherever it is cached. Top-level match
// is tried first; otherwise each parent's replies are filtered. Comment
// ids are globally unique so the first match is the only match.
func (s *CommentStore) Remove(commentId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for postId, comments := range s.commentsByPost {
		filtered := funk.Filter(comments, func(c *models.CommentModel) bool {
			return c.CommentId != commentId
		}).([]*models.CommentModel)

		if len(filtered) != len(comments) {
			s.commentsByPost[postId] = filtered
			return true
		}
		for _, comment := range comments {
			replies := funk.Filter(comment.Replies, func(r *models.CommentModel) bool {
				return r.CommentId != commentId
			}).([]*models.CommentModel)
			if len(replies) != len(comment.Replies) {
				comment.Replies = replies
				return true
			}
		}
	}
	return false
}

// contains must be called with the lock held.
func (s *CommentStore) contains(postId, commentId string) bool {
	for _, comment := range s.commentsByPost[postId] {
		if comment.CommentId == commentId {
			return true
		}
		for _, reply := range comment.Replies {
			if reply.CommentId == commentId {
				return true
			}
		}
	}
	return false
}
