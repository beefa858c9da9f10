// Package parse extracts LogEvents from raw access-log lines.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"logfunnel/internal/domain"
)

// Matches the request token plus status and size of common/combined access
// logs: `"METHOD PATH PROTOCOL" STATUS SIZE` where SIZE may be "-".
var requestRe = regexp.MustCompile(`"(\S+) (\S+) \S+" (\d+) (\d+|-)`)

// Line extracts a LogEvent from one log line. The second return is false when
// the line does not carry a recognizable request token; that is not an error,
// the caller just skips the line.
func Line(line string) (domain.LogEvent, bool) {
	m := requestRe.FindStringSubmatch(line)
	if m == nil {
		return domain.LogEvent{}, false
	}
	status, err := strconv.Atoi(m[3])
	if err != nil {
		return domain.LogEvent{}, false
	}
	var size int64
	if m[4] != "-" {
		size, err = strconv.ParseInt(m[4], 10, 64)
		if err != nil {
			return domain.LogEvent{}, false
		}
	}
	url := m[2]
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return domain.LogEvent{
		Method: domain.Method(m[1]),
		URL:    url,
		Status: status,
		Size:   size,
	}, true
}
