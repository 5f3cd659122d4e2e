package api

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
	"time"

	"github.com/google/uuid"
)

// HTTPClient is the JSON/HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a gateway for the given base URL, e.g.
// "https://backend.example.com/api". A trailing slash is trimmed.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the backend's error envelope, decoded best-effort.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one JSON request. body may be nil; out may be nil when the
// response payload is irrelevant. Non-2xx statuses map onto the package
// sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		var eb errorBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)
		if eb.Message != "" {
			return fmt.Errorf("%w: %s: %s", ErrUnavailable, resp.Status, eb.Message)
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/Auth/login", nil, credentials{Email: email, Password: string(password)}, &resp)
	if err != nil {
		// On the login endpoint a 401 means bad credentials, not a stale token.
		if err == ErrUnauthorized {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, email string, password []byte) error {
	return c.do(ctx, http.MethodPost, "/Auth/register", nil, credentials{Email: email, Password: string(password)}, nil)
}

func (c *HTTPClient) ListCourses(ctx context.Context, p ListCoursesParams) (*CourseListResponse, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("Page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(p.PageSize))
	}
	if p.SearchTerm != "" {
		q.Set("SearchTerm", p.SearchTerm)
	}
	if p.Level != "" {
		q.Set("Level", p.Level)
	}
	if p.SortBy != "" {
		q.Set("SortBy", p.SortBy)
	}
	if p.SortDirection != "" {
		q.Set("SortDirection", p.SortDirection)
	}

	var resp CourseListResponse
	if err := c.do(ctx, http.MethodGet, "/user/catalog/courses", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetCourse(ctx context.Context, id string) (*CourseRecord, error) {
	var rec CourseRecord
	if err := c.do(ctx, http.MethodGet, "/Courses/"+url.PathEscape(id), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]CategoryRecord, error) {
	var recs []CategoryRecord
	if err := c.do(ctx, http.MethodGet, "/user/catalog/categories", nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) TopInstructors(ctx context.Context, count int) ([]InstructorRecord, error) {
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))

	var recs []InstructorRecord
	if err := c.do(ctx, http.MethodGet, "/Dashboard/top-instructors", q, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) ListEnrollments(ctx context.Context) ([]EnrollmentRecord, error) {
	var recs []EnrollmentRecord
	if err := c.do(ctx, http.MethodGet, "/user/enrollments", nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

type checkoutRequest struct {
	CourseIDs []int64 `json:"courseIds"`
}

func (c *HTTPClient) Checkout(ctx context.Context, courseIDs []int64) error {
	return c.do(ctx, http.MethodPost, "/user/enrollments/checkout", nil, checkoutRequest{CourseIDs: courseIDs}, nil)
}
