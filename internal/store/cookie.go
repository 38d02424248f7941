package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"
)

// CookieMaxAge matches the original cookie lifetime of ~395 days.
const CookieMaxAge = 395 * 24 * time.Hour

// writeCookie stores a base64-encoded payload as a single Set-Cookie
// style line: name=value; Expires=<RFC3339>; Path=/
func writeCookie(path, name string, payload []byte) error {
	encoded := base64.StdEncoding.EncodeToString(payload)
	expires := time.Now().Add(CookieMaxAge).UTC().Format(time.RFC3339)
	line := fmt.Sprintf("%s=%s; Expires=%s; Path=/\n", name, encoded, expires)
	return os.WriteFile(path, []byte(line), 0o644)
}

// readCookie returns the decoded payload for name, or ok=false when the
// cookie file is missing, malformed, expired, or holds a different name.
func readCookie(path, name string) ([]byte, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	line := strings.TrimSpace(string(raw))

	var value string
	expired := false
	for i, part := range strings.Split(line, ";") {
		part = strings.TrimSpace(part)
		key, val, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch {
		case i == 0:
			if key != name {
				return nil, false
			}
			value = val
		case key == "Expires":
			when, err := time.Parse(time.RFC3339, val)
			if err != nil || time.Now().After(when) {
				expired = true
			}
		}
	}
	if value == "" || expired {
		return nil, false
	}

	payload, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, false
	}
	return payload, true
}
