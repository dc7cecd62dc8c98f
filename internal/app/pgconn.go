package app

import (
	"net/url"
	"strings"
)

// pgConnString optionally tags the connection URL so lib/pq skips
// binary results for prepared statements; an explicit value in the URL
// always wins.
func pgConnString(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	query := parsed.Query()
	if query.Has("disable_prepared_binary_result") {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// pgDatabaseName extracts the database name from either a postgres://
// URL or a key=value DSN, for trace attributes.
func pgDatabaseName(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return strings.TrimPrefix(parsed.Path, "/")
	}

	for _, pair := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(pair, "dbname="); ok {
			return strings.Trim(name, `'"`)
		}
	}

	return ""
}
