package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[\w.%+-]+@[\w.-]+`)

// RedactEmail masks the local part of an address:
// "john.doe@example.com" becomes "jo***@example.com". Local parts of two
// characters or fewer are fully masked.
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}

// RedactString masks every address embedded in s.
func RedactString(s string) string {
	return emailPattern.ReplaceAllStringFunc(s, RedactEmail)
}

func redactAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); strings.Contains(s, "@") {
			return slog.String(a.Key, RedactString(s))
		}
	case slog.KindAny:
		if st, ok := a.Value.Any().(interface{ String() string }); ok {
			if s := st.String(); strings.Contains(s, "@") {
				return slog.String(a.Key, RedactString(s))
			}
		}
	}
	return a
}
