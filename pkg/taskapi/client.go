// Package taskapi is a typed HTTP client for the task-assistant API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// Client calls the API with a bearer session token.
// SignUp and SignIn adopt the returned token; SignOut drops it.
type Client struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a new client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
		token:   cfg.Token,
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// --- Auth ---

func (c *Client) SignUp(ctx context.Context, email, password, name string) (AuthResult, error) {
	var out AuthResult
	body := map[string]string{"email": email, "password": password, "name": name}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up/email", body, &out); err != nil {
		return AuthResult{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in/email", body, &out); err != nil {
		return AuthResult{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

// SignOut ends the session on the server and forgets the token.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-out", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// GetSession returns nil without error when there is no live session.
func (c *Client) GetSession(ctx context.Context) (*SessionInfo, error) {
	var out *SessionInfo
	if err := c.do(ctx, http.MethodGet, "/api/auth/get-session", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Tasks ---

type taskBody struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type taskEnvelope struct {
	Task Task `json:"task"`
}

func (c *Client) ListTasks(ctx context.Context, status string) ([]Task, error) {
	path := "/api/tasks"
	if status != "" && status != StatusAll {
		path += "?status=" + url.QueryEscape(status)
	}

	var out struct {
		Tasks []Task `json:"tasks"`
		Total int    `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, title, description string) (Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/tasks", taskBody{Title: title, Description: description}, &out); err != nil {
		return Task{}, err
	}
	return out.Task, nil
}

// UpdateTask replaces title and description; an empty description clears it.
func (c *Client) UpdateTask(ctx context.Context, id, title, description string) (Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPut, taskPath(id), taskBody{Title: title, Description: description}, &out); err != nil {
		return Task{}, err
	}
	return out.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func (c *Client) ToggleTask(ctx context.Context, id string) (Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPatch, taskPath(id)+"/toggle", nil, &out); err != nil {
		return Task{}, err
	}
	return out.Task, nil
}

func (c *Client) CompleteTask(ctx context.Context, id string) (Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPatch, taskPath(id)+"/complete", nil, &out); err != nil {
		return Task{}, err
	}
	return out.Task, nil
}

func taskPath(id string) string {
	return "/api/tasks/" + url.PathEscape(id)
}

// --- Chat ---

// SendChat sends one message. An empty sessionID starts a new session.
func (c *Client) SendChat(ctx context.Context, message, sessionID string) (ChatReply, error) {
	body := struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id,omitempty"`
	}{Message: message, SessionID: sessionID}

	var out ChatReply
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &out); err != nil {
		return ChatReply{}, err
	}
	return out, nil
}

func (c *Client) ListChatSessions(ctx context.Context) ([]ChatSession, error) {
	var out struct {
		Sessions []ChatSession `json:"sessions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chat/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

// ListChatMessages returns messages oldest first. limit 0 uses the server default.
func (c *Client) ListChatMessages(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error) {
	path := "/api/chat/sessions/" + url.PathEscape(sessionID) + "/messages"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var out struct {
		Messages []ChatMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// do sends the request and decodes the envelope's data into out.
// A null data leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		}
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}
