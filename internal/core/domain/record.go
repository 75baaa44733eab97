package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used for created_at and submitted_at.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseChoices decodes a JSON-encoded array of strings. Anything else yields an
// empty slice.
func ParseChoices(raw string) []string {
	var choices []string
	if err := json.Unmarshal([]byte(raw), &choices); err != nil || choices == nil {
		return []string{}
	}
	return choices
}

// EncodeChoices is the inverse of ParseChoices.
func EncodeChoices(choices []string) string {
	b, err := json.Marshal(choices)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ParseLikes reads a stored like counter. Leading integer digits are honoured the
// way a lenient integer parse would ("12abc" is 12); empty, non-numeric, and
// negative values read as 0.
func ParseLikes(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseTimestamp parses an ISO-8601 timestamp as written by FormatTimestamp or by
// any RFC 3339 producer.
func ParseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
