package core

import (
	"github.com/google/uuid"
)

// Default values used when a new request file is created.
const (
	DefaultMethod   = "POST"
	DefaultURL      = "https://example.com/api/resource"
	DefaultBodyType = "json"
	DefaultTimeout  = 0.5
)

// RequestOptions holds the transport options stored alongside a request.
type RequestOptions struct {
	ValidateSSL    bool    `json:"validate_ssl"`
	FollowRedirect bool    `json:"follow_redirect"`
	AttachCookies  bool    `json:"attach_cookies"`
	Proxy          string  `json:"proxy"`
	Timeout        float64 `json:"timeout"`
}

// RequestDocument is the on-disk representation of a single saved request.
type RequestDocument struct {
	Method          string            `json:"method"`
	URL             string            `json:"url"`
	Headers         map[string]string `json:"headers"`
	QueryParameters map[string]string `json:"query_parameters"`
	BodyType        string            `json:"body_type"`
	Body            string            `json:"body"`
	Options         RequestOptions    `json:"options"`
	Metadata        map[string]any    `json:"metadata,omitempty"`
}

// NewRequestDocument returns the template written for newly created requests.
func NewRequestDocument() *RequestDocument {
	return &RequestDocument{
		Method:          DefaultMethod,
		URL:             DefaultURL,
		Headers:         make(map[string]string),
		QueryParameters: make(map[string]string),
		BodyType:        DefaultBodyType,
		Options: RequestOptions{
			ValidateSSL:    true,
			FollowRedirect: true,
			AttachCookies:  true,
			Timeout:        DefaultTimeout,
		},
		Metadata: map[string]any{"id": uuid.New().String()},
	}
}

// ID returns the identifier stored in the document metadata, if any.
// Metadata is free-form, so a non-string id reads as empty.
func (d *RequestDocument) ID() string {
	id, _ := d.Metadata["id"].(string)
	return id
}

// SetHeader inserts or overwrites a header.
func (d *RequestDocument) SetHeader(key, value string) {
	if d.Headers == nil {
		d.Headers = make(map[string]string)
	}
	d.Headers[key] = value
}

// SetQueryParameter inserts or overwrites a query parameter.
func (d *RequestDocument) SetQueryParameter(key, value string) {
	if d.QueryParameters == nil {
		d.QueryParameters = make(map[string]string)
	}
	d.QueryParameters[key] = value
}

// Normalize replaces nil maps with empty ones so callers never need nil checks.
func (d *RequestDocument) Normalize() {
	if d.Headers == nil {
		d.Headers = make(map[string]string)
	}
	if d.QueryParameters == nil {
		d.QueryParameters = make(map[string]string)
	}
}
