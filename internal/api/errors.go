package api

import "fmt"

// ConfigError reports a bad or missing configuration value (unknown endpoint
// name, missing base URL). Not retryable; fatal to the invocation.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// AuthError reports a 401 from the upstream API.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "Authentication failed. Check PAGERANGERS_API_TOKEN."
}

// AccessError reports a 403 from the upstream API.
type AccessError struct{}

func (e *AccessError) Error() string {
	return "Access denied. Check PAGERANGERS_PROJECT_HASH."
}

// RateLimitError reports a 429 from the upstream API.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "Rate limit exceeded. Try again later."
}

// TransportError reports a network-level failure (connection refused, DNS,
// timeout) before any HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Connection error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError reports an unexpected non-2xx response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "Invalid JSON response from API"
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError reports a business-level error embedded in a 2xx response. The
// upstream convention returns errors as an "errormessage" field inside
// otherwise successful responses.
type APIError struct {
	Message string
	// KeyHint is set when the message suggests a key permission problem.
	KeyHint bool
}

func (e *APIError) Error() string {
	if e.KeyHint {
		return fmt.Sprintf("API Error: %s. Your API key may not have access to this endpoint.", e.Message)
	}
	return fmt.Sprintf("API Error: %s", e.Message)
}
