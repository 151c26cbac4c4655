package render

import (
	"fmt"
	"strings"

	"github.com/Kotlang/socialClient/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	authorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	timeStyle    = lipgloss.NewStyle().Faint(true)
	likesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	deleteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	previewStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// TreeRenderer prints a post's comment tree for the terminal. The
// delete affordance is shown only on the viewer's own comments.
type TreeRenderer struct {
	ViewerId string
	MaxDepth int
	Likes    *LikeTracker
}

func NewTreeRenderer(viewerId string) *TreeRenderer {
	return &TreeRenderer{
		ViewerId: viewerId,
		MaxDepth: DefaultMaxDepth,
		Likes:    NewLikeTracker(),
	}
}

// RenderPost renders every top-level comment with its replies.
func (r *TreeRenderer) RenderPost(comments []*models.CommentModel) string {
	if len(comments) == 0 {
		return timeStyle.Render("No comments yet.") + "\n"
	}

	b := &strings.Builder{}
	for _, comment := range comments {
		Walk(comment, r.MaxDepth, func(c *models.CommentModel, depth int) {
			r.renderComment(b, c, depth)
		})
	}
	return b.String()
}

func (r *TreeRenderer) renderComment(b *strings.Builder, c *models.CommentModel, depth int) {
	indent := strings.Repeat("    ", depth)

	header := authorStyle.Render(c.Author.DisplayName)
	if len(c.CreatedAt) > 0 {
		header += " " + timeStyle.Render(c.CreatedAt)
	}
	header += " " + likesStyle.Render(fmt.Sprintf("♥ %d", r.Likes.LikesCount(c)))
	if c.CreatorId == r.ViewerId {
		header += " " + deleteStyle.Render("[delete]")
	}

	fmt.Fprintf(b, "%s%s\n", indent, header)
	fmt.Fprintf(b, "%s%s\n", indent, c.Content)
	for _, preview := range c.Previews {
		if len(preview.Title) > 0 {
			fmt.Fprintf(b, "%s%s\n", indent, previewStyle.Render("↳ "+preview.Title+" ("+preview.Url+")"))
		}
	}
	if depth >= r.MaxDepth && len(c.Replies) > 0 {
		fmt.Fprintf(b, "%s%s\n", indent, timeStyle.Render(fmt.Sprintf("… %d more replies", len(c.Replies))))
	}
}
