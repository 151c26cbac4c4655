// Package extensions decorates comments with data the backend does not
// inline: author display snapshots and web previews for linked pages.
package extensions

import (
	"github.com/Kotlang/socialClient/models"
)

// AttachAuthorInfoAsync fills in the author display snapshot for a
// fetched comment from its denormalized fields, and makes sure the
// replies slice is usable. Display name falls back to "User" when the
// backend sent none.
func AttachAuthorInfoAsync(comment *models.CommentModel) chan bool {
	done := make(chan bool)

	go func() {
		attachAuthorInfo(comment)
		done <- true
	}()

	return done
}

func attachAuthorInfo(comment *models.CommentModel) {
	displayName := comment.AuthorName
	if len(displayName) == 0 {
		displayName = "User"
	}
	comment.Author = models.Author{
		UserId:      comment.CreatorId,
		DisplayName: displayName,
	}
	if comment.Replies == nil {
		comment.Replies = []*models.CommentModel{}
	}
	for _, reply := range comment.Replies {
		attachAuthorInfo(reply)
	}
}

// AttachSessionAuthor stamps a freshly created comment with the current
// user's snapshot. The backend echoes creator id but not display data,
// so the session is the source here.
func AttachSessionAuthor(comment *models.CommentModel, user *models.SessionUser) {
	comment.Author = models.Author{
		UserId:      user.UserId,
		DisplayName: user.DisplayName,
	}
	if len(comment.CreatorId) == 0 {
		comment.CreatorId = user.UserId
	}
	if comment.Replies == nil {
		comment.Replies = []*models.CommentModel{}
	}
}
