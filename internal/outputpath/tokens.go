package outputpath

import (
	"strings"
	"time"

	"labrec/internal/cfgfile"
)

// Placeholder names substitutable in path templates.
const (
	TokenDatetime = "datetime"
	TokenDate     = "date"
	TokenTime     = "time"
	TokenHostname = "hostname"
	TokenModality = "m"
	TokenSubject  = "p"
	TokenSession  = "s"
	TokenBlock    = "b"
	TokenAcq      = "a"
	TokenRun      = "r"
)

// Identity defaults used when the session config does not override them.
const (
	defaultModality    = "eeg"
	defaultParticipant = "P001"
	defaultSession     = "S001"
	defaultBlock       = "task"
	defaultAcq         = "acq"
	defaultRun         = "01"
)

// Tokens builds the placeholder set for one resolution. Time tokens are
// derived from now in UTC, so two calls separated in time legitimately
// differ; callers that need determinism inject a fixed instant.
func Tokens(cfg cfgfile.Map, hostname string, now time.Time) map[string]string {
	utc := now.UTC()
	return map[string]string{
		TokenDatetime: DatetimeToken(utc),
		TokenDate:     utc.Format("2006-01-02"),
		TokenTime:     utc.Format("150405.000") + "Z",
		TokenHostname: hostname,
		TokenModality: identity(cfg, cfgfile.KeyBidsModality, defaultModality),
		TokenSubject:  identity(cfg, cfgfile.KeyParticipant, defaultParticipant),
		TokenSession:  identity(cfg, cfgfile.KeySession, defaultSession),
		TokenBlock:    identity(cfg, cfgfile.KeyBlock, defaultBlock),
		TokenAcq:      identity(cfg, cfgfile.KeyAcq, defaultAcq),
		TokenRun:      identity(cfg, cfgfile.KeyRun, defaultRun),
	}
}

// DatetimeToken renders an instant as yyyy-MM-ddTHHmmss.zzzZ in UTC. The
// time portion carries no separators; other recorder implementations write
// this exact shape into filenames, so it must not change.
func DatetimeToken(t time.Time) string {
	return t.UTC().Format("2006-01-02T150405.000") + "Z"
}

func identity(cfg cfgfile.Map, key, fallback string) string {
	if v, ok := cfg.Lookup(key); ok {
		if s := v.String(); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fallback
}
