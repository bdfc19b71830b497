// Package sanitize removes credentials from configuration values before
// they reach logs or error messages.
package sanitize

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultMask replaces redacted values.
const DefaultMask = "***"

const motherduckToken = "motherduck_token="

// RedactURL masks the password, or a trailing motherduck token, in a
// database URL. The input is returned unchanged when it does not parse or
// carries no credential.
func RedactURL(raw, mask string) string {
	if mask == "" {
		mask = DefaultMask
	}
	if i := strings.Index(raw, motherduckToken); i >= 0 {
		return raw[:i] + motherduckToken + mask
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), mask)
		}
	}
	return u.String()
}

// RedactConfig walks a configuration map in place, masking password fields,
// motherduck tokens in file paths, and credentials in values whose key
// starts with "database". Nested maps are walked recursively.
func RedactConfig(cfg map[string]any, mask string) {
	if mask == "" {
		mask = DefaultMask
	}
	for k, v := range cfg {
		switch {
		case k == "password":
			cfg[k] = mask
		case k == "filepath":
			if s, ok := v.(string); ok {
				if i := strings.Index(s, motherduckToken); i >= 0 {
					cfg[k] = s[:i] + motherduckToken + mask
				}
			}
		default:
			if sub, ok := v.(map[string]any); ok {
				RedactConfig(sub, mask)
			} else if s, ok := v.(string); ok && strings.HasPrefix(k, "database") {
				cfg[k] = RedactURL(s, mask)
			}
		}
	}
}

var quotedLiteral = regexp.MustCompile(`'(.*?)'`)

// TruncateError keeps only the first line of an error message and masks any
// single-quoted literals in it, so that data values never leak into
// reports.
func TruncateError(msg string) string {
	first, _, _ := strings.Cut(msg, "\n")
	return quotedLiteral.ReplaceAllString(first, "'***'")
}
