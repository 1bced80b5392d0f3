// Package oceanapi is the gateway to the ocean data platform backend: login,
// catch reports, eDNA samples, species/vessel listings, and ML predictions.
package oceanapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/oceandata/fisherman-cli/internal/model"
)

const (
	defaultBaseURL = "https://ocean-mvp-backend.onrender.com"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 4 << 20
)

// Client is the backend gateway. Every call is a single request; nothing is
// retried.
type Client interface {
	Authenticate(ctx context.Context, email, password string) (Session, error)
	SubmitCatchReport(ctx context.Context, sess Session, report model.CatchReport) error
	RequestPrediction(ctx context.Context, sess Session, features model.EnvironmentalFeatures) (*model.PredictionResult, error)
	SubmitEDNASample(ctx context.Context, sess Session, sample model.EDNASample) error
	ListSpecies(ctx context.Context, sess Session) ([]json.RawMessage, error)
	ListVessels(ctx context.Context, sess Session) ([]json.RawMessage, error)
}

// Session is the authentication state for one user. It is passed into every
// call rather than held by the client.
type Session struct {
	Token string `json:"access_token"`
	Email string `json:"email,omitempty"`
}

// Authenticated reports whether the session carries a bearer token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithPredictBaseURL sends prediction requests to a separate host.
func WithPredictBaseURL(url string) Option {
	return func(c *httpClient) {
		c.predictURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout. A client passed through
// WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.timeout = d
	}
}

type httpClient struct {
	baseURL    string
	predictURL string
	http       *http.Client
	timeout    time.Duration
}

// NewClient creates a backend gateway client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	if c.predictURL == "" {
		c.predictURL = c.baseURL
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *httpClient) Authenticate(ctx context.Context, email, password string) (Session, error) {
	body, status, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/auth/login", Session{}, loginRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, transportError("login", err)
	}
	if status != http.StatusOK {
		return Session{}, &StatusError{Op: "login", Code: status, Body: string(body), kind: ErrAuthFailed}
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Session{}, classify(ErrAuthFailed, eris.Wrap(err, "oceanapi: unmarshal login response"))
	}
	if resp.AccessToken == "" {
		return Session{}, classify(ErrAuthFailed, eris.New("oceanapi: login response has no access_token"))
	}

	return Session{Token: resp.AccessToken, Email: email}, nil
}

func (c *httpClient) SubmitCatchReport(ctx context.Context, sess Session, report model.CatchReport) error {
	return c.submit(ctx, "submit catch report", c.baseURL+"/api/catch-reports", sess, report)
}

func (c *httpClient) SubmitEDNASample(ctx context.Context, sess Session, sample model.EDNASample) error {
	return c.submit(ctx, "submit edna sample", c.baseURL+"/api/edna", sess, sample)
}

func (c *httpClient) submit(ctx context.Context, op, url string, sess Session, payload any) error {
	body, status, err := c.do(ctx, http.MethodPost, url, sess, payload)
	if err != nil {
		return transportError(op, err)
	}
	if status < 200 || status > 299 {
		return &StatusError{Op: op, Code: status, Body: strings.TrimSpace(string(body)), kind: ErrSubmissionFailed}
	}
	return nil
}

func (c *httpClient) RequestPrediction(ctx context.Context, sess Session, features model.EnvironmentalFeatures) (*model.PredictionResult, error) {
	body, status, err := c.do(ctx, http.MethodPost, c.predictURL+"/api/predict", sess, newPredictRequest(features))
	if err != nil {
		return nil, classify(ErrPredictionUnavailable, transportError("predict", err))
	}
	if status != http.StatusOK {
		return nil, &StatusError{Op: "predict", Code: status, Body: string(body), kind: ErrPredictionUnavailable}
	}

	result, err := parsePrediction(body)
	if err != nil {
		return nil, classify(ErrPredictionUnavailable, err)
	}
	return result, nil
}

func (c *httpClient) ListSpecies(ctx context.Context, sess Session) ([]json.RawMessage, error) {
	return c.list(ctx, "list species", c.baseURL+"/api/species", sess)
}

func (c *httpClient) ListVessels(ctx context.Context, sess Session) ([]json.RawMessage, error) {
	return c.list(ctx, "list vessels", c.baseURL+"/api/vessels", sess)
}

func (c *httpClient) list(ctx context.Context, op, url string, sess Session) ([]json.RawMessage, error) {
	body, status, err := c.do(ctx, http.MethodGet, url, sess, nil)
	if err != nil {
		return nil, transportError(op, err)
	}
	if status != http.StatusOK {
		return nil, &StatusError{Op: op, Code: status, Body: string(body)}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, eris.Wrapf(err, "oceanapi: %s: unmarshal response", op)
	}
	return records, nil
}

// do sends one request and returns the body and status. An error means the
// exchange itself failed (request build, network, timeout, body read).
func (c *httpClient) do(ctx context.Context, method, url string, sess Session, payload any) ([]byte, int, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, eris.Wrap(err, "marshal request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, eris.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, eris.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, eris.Wrap(err, "read response")
	}
	return body, resp.StatusCode, nil
}
