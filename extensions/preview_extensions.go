package extensions

import (
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Kotlang/socialClient/models"
	"golang.org/x/net/html"
)

const linksExpr = `(https?:\/\/[^\s]+)`

var linkPattern = regexp.MustCompile(linksExpr)

var previewClient = &http.Client{Timeout: 5 * time.Second}

// GetLinks extracts http(s) links from comment content.
func GetLinks(content string) []string {
	return linkPattern.FindAllString(content, -1)
}

// AttachPreviewsAsync scans the comment content for links and fills
// comment.Previews with whatever metadata the linked pages expose.
// Pages that fail to load still produce a bare preview with the url, so
// the preview count always matches the link count.
func AttachPreviewsAsync(comment *models.CommentModel) chan bool {
	done := make(chan bool)

	go func() {
		links := GetLinks(comment.Content)
		if len(links) == 0 {
			done <- true
			return
		}

		previews := make([]models.WebPreview, len(links))
		wg := &sync.WaitGroup{}
		for i, link := range links {
			wg.Add(1)
			go func(i int, link string) {
				defer wg.Done()
				previews[i] = generateWebPreview(link)
			}(i, link)
		}
		wg.Wait()

		comment.Previews = previews
		done <- true
	}()

	return done
}

func generateWebPreview(url string) models.WebPreview {
	preview := models.WebPreview{Url: url}

	res, err := previewClient.Get(url)
	if err != nil {
		return preview
	}
	defer res.Body.Close()

	doc, err := html.Parse(res.Body)
	if err != nil {
		return preview
	}
	collectMeta(doc, &preview)
	return preview
}

// collectMeta walks the document head for title and og/description meta
// tags. Stops at body; previews don't need page content.
func collectMeta(n *html.Node, preview *models.WebPreview) {
	if n == nil || (n.Type == html.ElementNode && n.Data == "body") {
		return
	}
	if n.Type == html.ElementNode && n.Data == "title" && len(preview.Title) == 0 && n.FirstChild != nil {
		preview.Title = strings.TrimSpace(n.FirstChild.Data)
	}
	if n.Type == html.ElementNode && n.Data == "meta" {
		name, property, content := "", "", ""
		for _, attr := range n.Attr {
			switch attr.Key {
			case "name":
				name = attr.Val
			case "property":
				property = attr.Val
			case "content":
				content = strings.TrimSpace(attr.Val)
			}
		}
		if len(content) > 0 {
			switch {
			case name == "description" && len(preview.Description) == 0:
				preview.Description = content
			case property == "og:title" && len(preview.Title) == 0:
				preview.Title = content
			case property == "og:image":
				preview.PreviewImage = content
			case property == "og:description" && len(preview.Description) == 0:
				preview.Description = content
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectMeta(c, preview)
	}
}
