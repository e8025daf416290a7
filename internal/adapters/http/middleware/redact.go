package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-transform-demo/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts an http.Header map into slog.Attr values sorted by
// header name. Headers listed in logging.SensitiveHeaders are replaced with
// "[REDACTED]". Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}

// RedactQuery renders a query string for logging with the values of
// sensitive parameters replaced. Parameter names are matched against
// logging.SensitiveHeaders and the "token" and "password" names.
func RedactQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	out := make(url.Values, len(q))
	for key, vals := range q {
		if isSensitiveParam(key) {
			out[key] = []string{redacted}
			continue
		}
		out[key] = vals
	}
	return out.Encode()
}

func isSensitiveParam(name string) bool {
	name = strings.ToLower(name)
	if logging.SensitiveHeaders[name] {
		return true
	}
	return name == "token" || name == "password" || name == "api_key"
}
