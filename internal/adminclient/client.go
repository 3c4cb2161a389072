// internal/adminclient/client.go

// Package adminclient is the Go client for the admin API, used by the
// back-office tooling. The bearer credential is passed explicitly into
// every call rather than held in ambient client state, and a 401 from
// the server invokes a caller-supplied handler so the tool decides how
// to re-authenticate.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aspirechess/aspirehub/internal/domain/models"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 30 * time.Second

// FieldError is one field-level validation message from the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the server envelope. For
// validation failures Errors carries every field violation.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsValidation reports whether the error carries field-level messages.
func (e *APIError) IsValidation() bool { return len(e.Errors) > 0 }

// UnauthorizedHandler is invoked when the server answers 401. The
// request still returns the APIError afterward.
type UnauthorizedHandler func(*APIError)

// Client talks to the admin API over HTTP.
type Client struct {
	baseURL        string
	http           *http.Client
	onUnauthorized UnauthorizedHandler
}

// New builds a Client for the API at baseURL (e.g.
// "https://api.aspirechess.in"). onUnauthorized may be nil.
func New(baseURL string, onUnauthorized UnauthorizedHandler) *Client {
	return &Client{
		baseURL:        baseURL,
		http:           &http.Client{Timeout: DefaultTimeout},
		onUnauthorized: onUnauthorized,
	}
}

type envelope struct {
	Success     bool            `json:"success"`
	Count       int             `json:"count"`
	Total       int64           `json:"total"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data"`
	Errors      []FieldError    `json:"errors"`
}

// do issues one request. token is attached as a bearer credential when
// non-empty; dst, when non-nil, receives the envelope's data field.
func (c *Client) do(ctx context.Context, method, path, token string, body, dst any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Errors:     env.Errors,
		}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized(apiErr)
		}
		return nil, apiErr
	}

	if dst != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return &env, nil
}

// ProgramPage is one admin page of programs.
type ProgramPage struct {
	Programs    []models.Program
	Total       int64
	TotalPages  int
	CurrentPage int
}

// ListPrograms fetches one admin page of programs.
func (c *Client) ListPrograms(ctx context.Context, token string, page, limit int, search, status string) (ProgramPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}
	if status != "" {
		q.Set("status", status)
	}

	var programs []models.Program
	env, err := c.do(ctx, http.MethodGet, "/api/programs/admin?"+q.Encode(), token, nil, &programs)
	if err != nil {
		return ProgramPage{}, err
	}
	return ProgramPage{
		Programs:    programs,
		Total:       env.Total,
		TotalPages:  env.TotalPages,
		CurrentPage: env.CurrentPage,
	}, nil
}

// GetProgram fetches one program by id.
func (c *Client) GetProgram(ctx context.Context, token, id string) (models.Program, error) {
	var p models.Program
	if _, err := c.do(ctx, http.MethodGet, "/api/programs/"+id, token, nil, &p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// CreateProgram submits a new program payload.
func (c *Client) CreateProgram(ctx context.Context, token string, payload any) (models.Program, error) {
	var p models.Program
	if _, err := c.do(ctx, http.MethodPost, "/api/programs", token, payload, &p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// UpdateProgram replaces the program with id.
func (c *Client) UpdateProgram(ctx context.Context, token, id string, payload any) (models.Program, error) {
	var p models.Program
	if _, err := c.do(ctx, http.MethodPut, "/api/programs/"+id, token, payload, &p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// ToggleProgramStatus flips isActive on the program with id.
func (c *Client) ToggleProgramStatus(ctx context.Context, token, id string) (models.Program, error) {
	var p models.Program
	if _, err := c.do(ctx, http.MethodPatch, "/api/programs/"+id+"/toggle-status", token, nil, &p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// DeleteProgram removes the program with id.
func (c *Client) DeleteProgram(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/programs/"+id, token, nil, nil)
	return err
}

// ReorderPrograms assigns display positions from the given id order.
func (c *Client) ReorderPrograms(ctx context.Context, token string, ids []string) error {
	body := map[string][]string{"programIds": ids}
	_, err := c.do(ctx, http.MethodPatch, "/api/programs/reorder", token, body, nil)
	return err
}
