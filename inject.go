package main

import (
	"os"

	"github.com/Kotlang/socialClient/auth"
	"github.com/Kotlang/socialClient/rest"
	"github.com/Kotlang/socialClient/service"
	"github.com/Kotlang/socialClient/store"
	"github.com/joho/godotenv"
)

const defaultApiUrl = "http://localhost:5003/api"

type Inject struct {
	Session      *auth.Session
	CommentApi   *rest.CommentApi
	CommentStore *store.CommentStore

	CommentService *service.CommentService
}

func NewInject() *Inject {
	godotenv.Load()
	inj := &Inject{}

	baseUrl := os.Getenv("SOCIAL_API_URL")
	if len(baseUrl) == 0 {
		baseUrl = defaultApiUrl
	}

	inj.Session = auth.NewSession(os.Getenv("AUTH_TOKEN"))
	inj.CommentApi = rest.NewCommentApi(baseUrl, inj.Session)
	inj.CommentStore = store.NewCommentStore()

	inj.CommentService = service.NewCommentService(inj.CommentApi, inj.CommentStore, inj.Session)
	return inj
}
