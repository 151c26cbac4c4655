package service

import (
	"context"
	"sync"

	"github.com/Kotlang/socialClient/auth"
	"github.com/Kotlang/socialClient/extensions"
	"github.com/Kotlang/socialClient/logger"
	"github.com/Kotlang/socialClient/models"
	"github.com/Kotlang/socialClient/rest"
	"github.com/Kotlang/socialClient/store"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

const defaultPageSize = 10

// User-facing error strings, kept exactly as the product ships them.
const (
	msgLoadFailed     = "Failed to load comments"
	msgPostFailed     = "Failed to post your comment"
	msgUpdateFailed   = "Failed to update your comment"
	msgDeleteFailed   = "Failed to delete your comment"
	msgToxicContent   = "Your comment contains inappropriate or toxic content and cannot be posted"
	msgLoginToComment = "You must be logged in to comment"
	msgLoginToEdit    = "You must be logged in to edit a comment"
	msgLoginToDelete  = "You must be logged in to delete a comment"
)

// CommentService runs the sync operations between the backend and the
// local store. Every operation clears the observable error, talks to
// the backend, and reconciles the store only on success; failures leave
// the cache exactly as it was.
type CommentService struct {
	api     *rest.CommentApi
	store   *store.CommentStore
	session *auth.Session

	mu       sync.RWMutex
	inFlight int
	lastErr  string
}

func NewCommentService(api *rest.CommentApi, commentStore *store.CommentStore, session *auth.Session) *CommentService {
	return &CommentService{
		api:     api,
		store:   commentStore,
		session: session,
	}
}

// GetComments reads the cached tree for a post. Never fetches.
func (s *CommentService) GetComments(postId string) []*models.CommentModel {
	return s.store.GetComments(postId)
}

// Loading reports whether any operation is in flight.
func (s *CommentService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// LastError returns the message of the most recent failure, empty when
// the latest operation started cleanly.
func (s *CommentService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// FetchPostComments pulls the comment list for a post and replaces the
// cached value wholesale. On failure the previous cache entry stays and
// an empty slice comes back with the error.
func (s *CommentService) FetchPostComments(ctx context.Context, postId string) ([]*models.CommentModel, error) {
	s.begin()
	defer s.end()

	resultChan, errChan := s.api.GetPostComments(ctx, postId, 0, defaultPageSize)
	select {
	case dtos := <-resultChan:
		comments := funk.Map(dtos, func(dto rest.CommentDto) *models.CommentModel {
			comment := &models.CommentModel{}
			copier.Copy(comment, &dto)
			return comment
		}).([]*models.CommentModel)

		attachPromises := funk.Map(comments, extensions.AttachAuthorInfoAsync).([]chan bool)
		for _, promise := range attachPromises {
			<-promise
		}

		s.store.Replace(postId, comments)
		return comments, nil
	case err := <-errChan:
		logger.Error("Failed fetching comments", zap.String("postId", postId), zap.Error(err))
		s.fail(msgLoadFailed)
		return []*models.CommentModel{}, err
	}
}

// AddComment creates a comment, or a reply when parentId is non-empty.
// The created comment is decorated with the session user's snapshot and
// slotted into the cached tree: top-level comments are prepended, replies
// appended under their parent. A reply whose parent is not cached is
// still returned but stays invisible locally until the next fetch.
func (s *CommentService) AddComment(ctx context.Context, postId, content, parentId string) (*models.CommentModel, error) {
	s.begin()
	defer s.end()

	user := s.session.User()
	if user == nil {
		s.fail(msgLoginToComment)
		return nil, ErrNotLoggedIn
	}
	if err := ValidateCreateCommentRequest(postId, content); err != nil {
		s.fail(msgPostFailed)
		return nil, err
	}

	req := rest.CreateCommentRequest{Content: content, PostId: postId, ParentId: parentId}
	resultChan, errChan := s.api.CreateComment(ctx, req)
	select {
	case dto := <-resultChan:
		comment := &models.CommentModel{}
		copier.Copy(comment, &dto)
		if len(comment.PostId) == 0 {
			comment.PostId = postId
		}
		extensions.AttachSessionAuthor(comment, user)
		<-extensions.AttachPreviewsAsync(comment)

		if len(parentId) == 0 {
			s.store.PrependTopLevel(postId, comment)
		} else if !s.store.AppendReply(postId, parentId, comment) {
			logger.Warn("Reply parent not in cached tree, reply hidden until next fetch",
				zap.String("postId", postId), zap.String("parentId", parentId))
		}
		return comment, nil
	case err := <-errChan:
		logger.Error("Failed adding comment", zap.String("postId", postId), zap.Error(err))
		if rest.IsContentPolicyViolation(err) {
			s.fail(msgToxicContent)
		} else {
			s.fail(msgPostFailed)
		}
		return nil, err
	}
}

// EditComment replaces a comment's content on the backend and then in
// every cached tree that holds the comment. Identity fields, timestamps
// and counters are untouched.
func (s *CommentService) EditComment(ctx context.Context, commentId, content string) (*models.CommentModel, error) {
	s.begin()
	defer s.end()

	if s.session.User() == nil {
		s.fail(msgLoginToEdit)
		return nil, ErrNotLoggedIn
	}
	if err := ValidateEditCommentRequest(commentId, content); err != nil {
		s.fail(msgUpdateFailed)
		return nil, err
	}

	resultChan, errChan := s.api.UpdateComment(ctx, commentId, content)
	select {
	case dto := <-resultChan:
		updated := &models.CommentModel{}
		copier.Copy(updated, &dto)
		s.store.UpdateContent(commentId, content)
		return updated, nil
	case err := <-errChan:
		logger.Error("Failed updating comment", zap.String("commentId", commentId), zap.Error(err))
		if rest.IsContentPolicyViolation(err) {
			s.fail(msgToxicContent)
		} else {
			s.fail(msgUpdateFailed)
		}
		return nil, err
	}
}

// RemoveComment deletes a comment on the backend, then drops it from
// whichever cached tree holds it. Returns whether the backend
// acknowledged the deletion.
func (s *CommentService) RemoveComment(ctx context.Context, commentId string) (bool, error) {
	s.begin()
	defer s.end()

	if s.session.User() == nil {
		s.fail(msgLoginToDelete)
		return false, ErrNotLoggedIn
	}

	resultChan, errChan := s.api.DeleteComment(ctx, commentId)
	select {
	case success := <-resultChan:
		if success {
			s.store.Remove(commentId)
		}
		return success, nil
	case err := <-errChan:
		logger.Error("Failed deleting comment", zap.String("commentId", commentId), zap.Error(err))
		s.fail(msgDeleteFailed)
		return false, err
	}
}

// begin marks an operation in flight and clears the observable error.
func (s *CommentService) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
	s.lastErr = ""
}

func (s *CommentService) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
}

func (s *CommentService) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}
