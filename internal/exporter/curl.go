package exporter

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/fetchedhq/fetched/internal/core"
)

// ErrInvalidRequest is returned when there is no document to export.
var ErrInvalidRequest = errors.New("invalid request")

// CurlExporter renders request documents as single-line curl commands.
type CurlExporter struct{}

// NewCurlExporter creates a curl exporter.
func NewCurlExporter() *CurlExporter {
	return &CurlExporter{}
}

// ExportRequest converts a single request document to a curl command.
func (c *CurlExporter) ExportRequest(doc *core.RequestDocument) (string, error) {
	if doc == nil {
		return "", ErrInvalidRequest
	}

	parts := []string{"curl"}

	// Method (only if not GET)
	method := strings.ToUpper(strings.TrimSpace(doc.Method))
	if method != "" && method != "GET" {
		parts = append(parts, "-X", method)
	}

	for _, key := range sortedKeys(doc.Headers) {
		parts = append(parts, "-H", key+": "+doc.Headers[key])
	}

	if doc.Body != "" {
		parts = append(parts, "--data-raw", doc.Body)
	}

	if doc.Options.Proxy != "" {
		parts = append(parts, "--proxy", doc.Options.Proxy)
	}
	if !doc.Options.ValidateSSL {
		parts = append(parts, "--insecure")
	}
	if doc.Options.FollowRedirect {
		parts = append(parts, "--location")
	}

	// URL (always last)
	parts = append(parts, withQuery(doc.URL, doc.QueryParameters))

	return formatInlineCurl(parts), nil
}

// withQuery appends params to the query of rawURL, keeping any query and
// fragment already present. Unparseable URLs are returned unchanged.
func withQuery(rawURL string, params map[string]string) string {
	if len(params) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	values := url.Values{}
	for _, key := range sortedKeys(params) {
		values.Add(key, params[key])
	}
	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += values.Encode()
	return u.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}

func formatInlineCurl(parts []string) string {
	var result strings.Builder
	for i, part := range parts {
		if i > 0 {
			result.WriteString(" ")
		}
		result.WriteString(shellQuote(part))
	}
	return result.String()
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'$`\\!*?[]{}()<>|&;#~") {
		return s
	}

	// Use single quotes and escape any single quotes in the string
	escaped := strings.ReplaceAll(s, "'", `'"'"'`)
	return "'" + escaped + "'"
}
