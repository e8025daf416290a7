package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) redacted by
// both this package and the serve-mode request logging middleware.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings. At least 10 characters per segment
// keeps version numbers and decimal prices out.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// newRedactAttr returns a masq ReplaceAttr function for slog.HandlerOptions.
// Query strings from serve mode reach the logs, so credentials passed there
// are caught by field name or by value pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+5)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)

	return masq.New(opts...)
}
