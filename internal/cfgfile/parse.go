package cfgfile

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Recognized keys. Unknown keys are retained in the parsed Map but only
// these influence filename resolution and store mapping.
const (
	KeyStudyRoot       = "StudyRoot"
	KeyStorageLocation = "StorageLocation"
	KeyPathTemplate    = "PathTemplate"
	KeyBidsModality    = "BidsModality"
	KeyParticipant     = "Participant"
	KeySession         = "Session"
	KeyBlock           = "Block"
	KeyAcq             = "Acq"
	KeyRun             = "Run"
	KeyRCSEnabled      = "RCSEnabled"
	KeyRCSPort         = "RCSPort"
	KeyAutoStart       = "AutoStart"
	KeyRequiredStreams = "RequiredStreams"
)

var (
	intPattern   = regexp.MustCompile(`^[-+]?\d+$`)
	floatPattern = regexp.MustCompile(`^[-+]?\d*\.\d+$`)
)

// ParseFile reads and parses a .cfg file. The only errors it can return are
// file I/O errors; malformed content is tolerated, not reported.
func ParseFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cfg file: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse tokenizes raw .cfg text into a Map. Each physical line stands alone:
// comments are stripped, lines without '=' are dropped, and the remainder is
// split on the first '=' into a trimmed key and a typed value.
func Parse(text string) Map {
	cfg := make(Map)
	for _, raw := range strings.Split(text, "\n") {
		line := stripComment(raw)
		if line == "" {
			continue
		}
		key, rest, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		cfg[strings.TrimSpace(key)] = ParseValue(rest)
	}
	return cfg
}

// stripComment removes a trailing ';' or '#' comment and surrounding
// whitespace. A marker only counts as a comment when it opens the line or
// the character before it is whitespace; ';' inside an unquoted value
// (RequiredStreams=a;b) stays part of the value. Only the first occurrence
// of each marker is considered; existing .cfg files depend on this.
func stripComment(line string) string {
	for _, sep := range []string{";", "#"} {
		idx := strings.Index(line, sep)
		if idx < 0 {
			continue
		}
		if idx == 0 || isSpaceByte(line[idx-1]) {
			line = line[:idx]
		}
	}
	return strings.TrimSpace(line)
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseValue types a single right-hand-side fragment. Rules run in order and
// fall through on failure; the final default is the trimmed text itself, so
// this function cannot fail.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return StringValue("")
	}

	// A double quote anywhere marks a comma-separated list. A single-element
	// list collapses back to a plain string.
	if strings.Contains(s, `"`) {
		parts := strings.Split(s, ",")
		items := make([]string, 0, len(parts))
		for _, part := range parts {
			items = append(items, unquote(strings.TrimSpace(part)))
		}
		if len(items) == 1 {
			return StringValue(items[0])
		}
		return ListValue(items)
	}

	if intPattern.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(n)
		}
	}
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return FloatValue(f)
		}
	}
	// Boolean-style flags arrive as 0/1 and stay integers, never a distinct
	// boolean type.
	if s == "0" || s == "1" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(n)
		}
	}

	return StringValue(s)
}

// unquote strips one surrounding layer of matching double or single quotes.
func unquote(item string) string {
	if len(item) >= 2 {
		first, last := item[0], item[len(item)-1]
		if first == last && (first == '"' || first == '\'') {
			return item[1 : len(item)-1]
		}
	}
	return item
}
