package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Kotlang/socialClient/logger"
	"github.com/Kotlang/socialClient/render"
	"go.uber.org/zap"
)

var (
	postId   = flag.String("post", "", "post id to browse")
	text     = flag.String("text", "", "comment text for -reply-to/-edit, or a new top-level comment")
	replyTo  = flag.String("reply-to", "", "parent comment id to reply under")
	editId   = flag.String("edit", "", "comment id whose text to replace with -text")
	deleteId = flag.String("delete", "", "comment id to delete")
	likeId   = flag.String("like", "", "comment id to like for this render")
	verbose  = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()
	if *verbose {
		logger.SetVerbose()
	}
	if len(*postId) == 0 {
		logger.Fatal("Missing -post flag")
	}

	inject := NewInject()
	ctx := context.Background()
	svc := inject.CommentService

	viewerId := ""
	if user := inject.Session.User(); user != nil {
		viewerId = user.UserId
	}
	renderer := render.NewTreeRenderer(viewerId)

	handlers := render.Handlers{
		OnReply: func(parentId, content string) error {
			_, err := svc.AddComment(ctx, *postId, content, parentId)
			return err
		},
		OnLike: func(commentId string) {
			renderer.Likes.ToggleLike(commentId)
		},
		OnDelete: func(commentId string) error {
			_, err := svc.RemoveComment(ctx, commentId)
			return err
		},
	}

	switch {
	case len(*deleteId) > 0:
		if err := handlers.OnDelete(*deleteId); err != nil {
			logger.Fatal(svc.LastError(), zap.Error(err))
		}
	case len(*editId) > 0:
		if _, err := svc.EditComment(ctx, *editId, *text); err != nil {
			logger.Fatal(svc.LastError(), zap.Error(err))
		}
	case len(*replyTo) > 0:
		if err := handlers.OnReply(*replyTo, *text); err != nil {
			logger.Fatal(svc.LastError(), zap.Error(err))
		}
	case len(*text) > 0:
		if _, err := svc.AddComment(ctx, *postId, *text, ""); err != nil {
			logger.Fatal(svc.LastError(), zap.Error(err))
		}
	}
	if len(*likeId) > 0 {
		handlers.OnLike(*likeId)
	}

	comments, err := svc.FetchPostComments(ctx, *postId)
	if err != nil {
		logger.Fatal(svc.LastError(), zap.Error(err))
	}
	fmt.Print(renderer.RenderPost(comments))
}
