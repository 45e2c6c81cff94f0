// Package api invokes configured PageRangers endpoints. A call resolves the
// endpoint template, substitutes runtime variables, builds the request URL,
// executes the request and classifies the outcome into one of the error
// kinds defined in errors.go.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/netresearch/pagerangers-skill/internal/template"
	"github.com/netresearch/pagerangers-skill/internal/types"
)

// DefaultTimeout is used when no PAGERANGERS_TIMEOUT override is set.
const DefaultTimeout = 30 * time.Second

const userAgent = "PageRangers-Skill/1.0"

// Client calls configured API endpoints. It holds the read-only
// configuration document and the per-invocation variable set.
type Client struct {
	cfg      *types.Config
	creds    types.Credentials
	vars     map[string]string
	http     *resty.Client
	debug    bool
	lastCall CallInfo
}

// CallInfo describes the most recent request for observability purposes.
// The URL is token-masked and safe to log or persist.
type CallInfo struct {
	Method   string
	URL      string
	Status   int
	Duration time.Duration
}

// NewClient builds a Client from a command context.
func NewClient(ctx *types.CommandContext) *Client {
	timeout := ctx.Credentials.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", userAgent)

	return &Client{
		cfg:   ctx.Config,
		creds: ctx.Credentials,
		vars:  ctx.Variables,
		http:  client,
		debug: ctx.Debug,
	}
}

// Call invokes the named endpoint and returns the decoded JSON payload.
// The endpoint lookup and variable substitution happen before any network
// traffic; an unknown endpoint never performs a request.
func (c *Client) Call(ctx context.Context, name string) (any, error) {
	endpoint, ok := c.cfg.Endpoints[name]
	if !ok {
		return nil, &ConfigError{Msg: "Unknown endpoint: " + name}
	}

	baseURL := c.creds.BaseURL
	if baseURL == "" {
		baseURL = c.cfg.BaseURL
	}
	if baseURL == "" {
		return nil, &ConfigError{Msg: "Missing base_url in config"}
	}

	method := strings.ToUpper(endpoint.Method)
	if method == "" {
		method = http.MethodGet
	}

	path := template.SubstituteString(endpoint.Path, c.vars)
	requestURL := joinURL(baseURL, path)

	if query := template.SubstituteMap(endpoint.Query, c.vars); len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			values.Set(key, value)
		}
		requestURL += "?" + values.Encode()
	}

	if c.debug {
		slog.Debug("calling endpoint", "method", method, "url", c.maskToken(requestURL))
	}

	req := c.http.R().SetContext(ctx)
	for key, value := range template.SubstituteMap(endpoint.Headers, c.vars) {
		req.SetHeader(key, value)
	}
	if endpoint.Body != nil {
		body, err := json.Marshal(template.Substitute(endpoint.Body, c.vars))
		if err != nil {
			return nil, &ConfigError{Msg: "Invalid endpoint body: " + err.Error()}
		}
		req.SetBody(body)
		if req.Header.Get("Content-Type") == "" {
			req.SetHeader("Content-Type", "application/json")
		}
	}

	c.lastCall = CallInfo{Method: method, URL: c.maskToken(requestURL)}

	start := time.Now()
	res, err := req.Execute(method, requestURL)
	c.lastCall.Duration = time.Since(start)
	if err != nil {
		// resty wraps transport failures in *url.Error, whose text embeds the
		// full request URL with the substituted token. Mask before the error
		// can reach stderr or the history database.
		return nil, &TransportError{Err: errors.New(c.maskToken(err.Error()))}
	}
	c.lastCall.Status = res.StatusCode()

	return classify(res)
}

// LastCall returns metadata about the most recent Call. The zero value is
// returned when no request has been issued (e.g. unknown endpoint).
func (c *Client) LastCall() CallInfo {
	return c.lastCall
}

// classify turns an HTTP response into a payload or one of the error kinds.
// A 2xx status alone is not sufficient for success: the upstream API embeds
// business errors as an "errormessage" field inside 200 responses.
func classify(res *resty.Response) (any, error) {
	switch res.StatusCode() {
	case http.StatusUnauthorized:
		return nil, &AuthError{}
	case http.StatusForbidden:
		return nil, &AccessError{}
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{}
	}
	if res.IsError() {
		return nil, &HTTPError{Status: res.StatusCode(), Body: res.String()}
	}

	var payload any
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, &ParseError{Err: err}
	}

	if obj, ok := payload.(map[string]any); ok {
		if raw, found := obj["errormessage"]; found {
			msg, _ := raw.(string)
			return nil, &APIError{
				Message: msg,
				KeyHint: strings.Contains(strings.ToLower(msg), "api-key"),
			}
		}
	}

	return payload, nil
}

// joinURL concatenates base and path with exactly one separating slash,
// regardless of trailing/leading slashes on either side.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// maskToken hides the credential token in a URL destined for a log line.
func (c *Client) maskToken(u string) string {
	if c.creds.Token == "" {
		return u
	}
	return strings.ReplaceAll(u, c.creds.Token, "***")
}

// ResponseMap returns the response-field map of a configured endpoint, or
// nil when the endpoint is unknown.
func (c *Client) ResponseMap(name string) map[string]string {
	endpoint, ok := c.cfg.Endpoints[name]
	if !ok {
		return nil
	}
	return endpoint.Response
}

// SetVariable adds a per-command variable before substitution, e.g. the
// keyword argument of the keyword command.
func (c *Client) SetVariable(name, value string) {
	c.vars[name] = value
}
