package rest

import "encoding/json"

// Every response from the social backend is wrapped in the same
// envelope. code mirrors the HTTP status; 200 signals success even when
// the transport status disagrees.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CommentDto is the wire shape of a comment as the backend returns it.
type CommentDto struct {
	CommentId  string `json:"commentId"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
	CreatorId  string `json:"creatorId"`
	AuthorName string `json:"authorName"`
	PostId     string `json:"postId"`
	ParentId   string `json:"parentId"`
	LikesCount int64  `json:"likesCount"`
	// Direct children, when the backend inlines them.
	Replies []CommentDto `json:"replies,omitempty"`
}

// commentPage is the payload of the list endpoint.
type commentPage struct {
	Items []CommentDto `json:"items"`
}

// CreateCommentRequest is the body of the create endpoint. ParentId is
// empty for top-level comments.
type CreateCommentRequest struct {
	Content  string `json:"content"`
	PostId   string `json:"postId"`
	ParentId string `json:"parentId,omitempty"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}
