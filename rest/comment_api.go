package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Kotlang/socialClient/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request goes out unauthenticated and the backend is
// expected to reject it as appropriate.
type TokenSource interface {
	Token() string
}

// CommentApi talks to the comment endpoints of the social backend.
// All methods return a result channel and an error channel; exactly one
// of the two receives a value. Consume with select:
//
//	resultChan, errChan := api.GetPostComments(ctx, postId, 0, 10)
//	select {
//	case dtos := <-resultChan:
//	case err := <-errChan:
//	}
type CommentApi struct {
	baseUrl string
	client  *http.Client
	tokens  TokenSource
}

func NewCommentApi(baseUrl string, tokens TokenSource) *CommentApi {
	return &CommentApi{
		baseUrl: baseUrl,
		client:  &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// GetPostComments lists comments for a post, paginated.
func (a *CommentApi) GetPostComments(ctx context.Context, postId string, pageIndex, pageSize int) (chan []CommentDto, chan error) {
	resultChan := make(chan []CommentDto)
	errChan := make(chan error)

	go func() {
		query := url.Values{}
		query.Set("postId", postId)
		query.Set("pageIndex", strconv.Itoa(pageIndex))
		query.Set("pageSize", strconv.Itoa(pageSize))

		page := commentPage{}
		if err := a.do(ctx, http.MethodGet, "/Comment", query, nil, &page); err != nil {
			errChan <- err
			return
		}
		resultChan <- page.Items
	}()

	return resultChan, errChan
}

// CreateComment posts a new comment or reply.
func (a *CommentApi) CreateComment(ctx context.Context, req CreateCommentRequest) (chan CommentDto, chan error) {
	resultChan := make(chan CommentDto)
	errChan := make(chan error)

	go func() {
		created := CommentDto{}
		if err := a.do(ctx, http.MethodPost, "/Comment", nil, req, &created); err != nil {
			errChan <- err
			return
		}
		resultChan <- created
	}()

	return resultChan, errChan
}

// UpdateComment replaces the content of an existing comment. The backend
// enforces that the caller is the author.
func (a *CommentApi) UpdateComment(ctx context.Context, commentId, content string) (chan CommentDto, chan error) {
	resultChan := make(chan CommentDto)
	errChan := make(chan error)

	go func() {
		updated := CommentDto{}
		body := updateCommentRequest{Content: content}
		if err := a.do(ctx, http.MethodPut, "/Comment/"+commentId, nil, body, &updated); err != nil {
			errChan <- err
			return
		}
		resultChan <- updated
	}()

	return resultChan, errChan
}

// DeleteComment removes a comment. The resolved value is whether the
// backend acknowledged the deletion.
func (a *CommentApi) DeleteComment(ctx context.Context, commentId string) (chan bool, chan error) {
	resultChan := make(chan bool)
	errChan := make(chan error)

	go func() {
		if err := a.do(ctx, http.MethodDelete, "/Comment/"+commentId, nil, nil, nil); err != nil {
			errChan <- err
			return
		}
		resultChan <- true
	}()

	return resultChan, errChan
}

// do issues one request and decodes the response envelope. The envelope
// is decoded even on non-2xx statuses since the backend ships its error
// details in the same shape.
func (a *CommentApi) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseUrl+path, &reqBody)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := a.tokens.Token(); len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		logger.Error("Request to social backend failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	env := envelope{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	if env.Code != http.StatusOK {
		return newApiError(resp.StatusCode, env)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding %s %s payload: %w", method, path, err)
		}
	}
	return nil
}
