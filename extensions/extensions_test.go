package extensions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kotlang/socialClient/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachAuthorInfoFromDenormalizedFields(t *testing.T) {
	comment := &models.CommentModel{CommentId: "c1", CreatorId: "u7", AuthorName: "Bob"}

	<-AttachAuthorInfoAsync(comment)

	assert.Equal(t, "u7", comment.Author.UserId)
	assert.Equal(t, "Bob", comment.Author.DisplayName)
	assert.NotNil(t, comment.Replies)
}

func TestAttachAuthorInfoFallsBackToUser(t *testing.T) {
	comment := &models.CommentModel{CommentId: "c1", CreatorId: "u7"}

	<-AttachAuthorInfoAsync(comment)

	assert.Equal(t, "User", comment.Author.DisplayName)
}

func TestAttachAuthorInfoCoversInlinedReplies(t *testing.T) {
	comment := &models.CommentModel{
		CommentId: "c1",
		CreatorId: "u1",
		Replies: []*models.CommentModel{
			{CommentId: "c2", CreatorId: "u2", AuthorName: "Carol"},
		},
	}

	<-AttachAuthorInfoAsync(comment)

	assert.Equal(t, "Carol", comment.Replies[0].Author.DisplayName)
	assert.NotNil(t, comment.Replies[0].Replies)
}

func TestAttachSessionAuthorStampsCurrentUser(t *testing.T) {
	comment := &models.CommentModel{CommentId: "c1"}
	user := &models.SessionUser{UserId: "u1", DisplayName: "Alice"}

	AttachSessionAuthor(comment, user)

	assert.Equal(t, "u1", comment.Author.UserId)
	assert.Equal(t, "Alice", comment.Author.DisplayName)
	assert.Equal(t, "u1", comment.CreatorId)
	assert.NotNil(t, comment.Replies)
}

func TestGetLinks(t *testing.T) {
	assert.Empty(t, GetLinks("no links here"))
	assert.Equal(t,
		[]string{"https://example.com/a", "http://example.org/b"},
		GetLinks("see https://example.com/a and http://example.org/b"))
}

func TestAttachPreviewsFromLinkedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>` +
			`<title>Example Page</title>` +
			`<meta property="og:description" content="An example."/>` +
			`<meta property="og:image" content="https://img.example/x.png"/>` +
			`</head><body>ignored</body></html>`))
	}))
	defer srv.Close()

	comment := &models.CommentModel{Content: "look at " + srv.URL}
	<-AttachPreviewsAsync(comment)

	require.Len(t, comment.Previews, 1)
	preview := comment.Previews[0]
	assert.Equal(t, srv.URL, preview.Url)
	assert.Equal(t, "Example Page", preview.Title)
	assert.Equal(t, "An example.", preview.Description)
	assert.Equal(t, "https://img.example/x.png", preview.PreviewImage)
}

func TestAttachPreviewsUnreachablePageKeepsBareUrl(t *testing.T) {
	comment := &models.CommentModel{Content: "dead link http://127.0.0.1:1/nothing"}
	<-AttachPreviewsAsync(comment)

	require.Len(t, comment.Previews, 1)
	assert.Equal(t, "http://127.0.0.1:1/nothing", comment.Previews[0].Url)
	assert.Empty(t, comment.Previews[0].Title)
}

func TestAttachPreviewsNoLinksIsNoop(t *testing.T) {
	comment := &models.CommentModel{Content: "plain text"}
	<-AttachPreviewsAsync(comment)

	assert.Empty(t, comment.Previews)
}
