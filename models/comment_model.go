package models

// Author is the denormalized display snapshot attached to a comment
// client-side. It is taken either from the fetch response or from the
// current session and may go stale if the user renames.
type Author struct {
	UserId      string `json:"id"`
	DisplayName string `json:"username"`
	AvatarUrl   string `json:"avatar"`
}

// CommentModel is the one normalized comment shape used everywhere past
// the API boundary. The rest package decodes wire payloads into it once;
// nothing downstream branches on shape.
type CommentModel struct {
	CommentId  string          `json:"commentId"`
	Content    string          `json:"content"`
	CreatedAt  string          `json:"createdAt"`
	CreatorId  string          `json:"creatorId"`
	AuthorName string          `json:"authorName"`
	PostId     string          `json:"postId"`
	ParentId   string          `json:"parentId"`
	LikesCount int64           `json:"likesCount"`
	Author     Author          `json:"author"`
	Previews   []WebPreview    `json:"webPreviews,omitempty"`
	Replies    []*CommentModel `json:"replies"`
}

// IsReply reports whether the comment references a parent comment.
func (c *CommentModel) IsReply() bool {
	return len(c.ParentId) > 0
}
