// Package gist pushes and pulls serialized snapshots to a gist-style remote
// paste service.
package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mytodo/mytodo/todo"
)

const (
	githubBaseURL = "https://api.github.com/gists"
	giteeBaseURL  = "https://gitee.com/api/v5/gists"

	// EncryptedFileName is the virtual file used for obfuscated snapshots.
	EncryptedFileName = "mytodo_data.enc"

	// PlainFileName is the virtual file used for plaintext snapshots.
	PlainFileName = "mytodo_data.json"

	gistDescription = "MyTodo data backup"

	// DefaultTimeout bounds one push or pull round-trip.
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrMissingToken is returned when sync runs without an access token.
	ErrMissingToken = errors.New("sync requires an access token")

	// ErrMissingGistID is returned when pulling before the first push.
	ErrMissingGistID = errors.New("no remote snapshot id (push first)")

	// ErrNoSnapshotFile is returned when the remote gist carries neither
	// snapshot file.
	ErrNoSnapshotFile = errors.New("remote gist has no snapshot file")
)

// StatusError reports a non-2xx remote API response verbatim so the user can
// diagnose token and permission problems.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote API returned %d: %s", e.StatusCode, e.Body)
}

// Client is a minimal gist API client. The two supported platform flavors
// differ only in endpoint URL and where the token goes: GitHub uses a bearer
// header, Gitee embeds an access_token parameter.
type Client struct {
	platform   todo.Platform
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the platform authenticated by token.
func NewClient(platform todo.Platform, token string) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	var baseURL string
	switch platform {
	case todo.PlatformGitHub:
		baseURL = githubBaseURL
	case todo.PlatformGitee:
		baseURL = giteeBaseURL
	default:
		return nil, fmt.Errorf("unknown sync platform %q", platform)
	}

	return &Client{
		platform:   platform,
		token:      token,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}, nil
}

type gistFile struct {
	Content string `json:"content"`
}

type gistPayload struct {
	Description string              `json:"description"`
	Files       map[string]gistFile `json:"files"`
	Public      bool                `json:"public"`
	// AccessToken is only set for the Gitee flavor.
	AccessToken string `json:"access_token,omitempty"`
}

type gistResponse struct {
	ID    string              `json:"id"`
	Files map[string]gistFile `json:"files"`
}

// Create uploads a new private gist holding one file and returns its id.
func (c *Client) Create(ctx context.Context, filename, content string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, c.baseURL, filename, content)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("remote API returned no gist id")
	}
	return resp.ID, nil
}

// Update replaces the file content of an existing gist.
func (c *Client) Update(ctx context.Context, id, filename, content string) error {
	_, err := c.do(ctx, http.MethodPatch, c.baseURL+"/"+id, filename, content)
	return err
}

// Fetch returns the files of an existing gist, keyed by file name.
func (c *Client) Fetch(ctx context.Context, id string) (map[string]string, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/"+id, "", "")
	if err != nil {
		return nil, err
	}

	files := make(map[string]string, len(resp.Files))
	for name, file := range resp.Files {
		files[name] = file.Content
	}
	return files, nil
}

func (c *Client) do(ctx context.Context, method, endpoint, filename, content string) (*gistResponse, error) {
	var body io.Reader
	if method != http.MethodGet {
		payload := gistPayload{
			Description: gistDescription,
			Files:       map[string]gistFile{filename: {Content: content}},
		}
		if c.platform == todo.PlatformGitee {
			payload.AccessToken = c.token
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	if c.platform == todo.PlatformGitee && method == http.MethodGet {
		endpoint += "?" + url.Values{"access_token": {c.token}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.platform == todo.PlatformGitHub {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(respBody))}
	}

	var parsed gistResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &parsed, nil
}
