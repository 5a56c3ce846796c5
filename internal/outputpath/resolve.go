// Package outputpath turns a parsed session config into the recording's
// output file path: it builds the placeholder token set, expands path
// templates, sanitizes the file name, and applies the documented fallback
// order between StorageLocation, StudyRoot, and PathTemplate.
package outputpath

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"labrec/internal/cfgfile"
)

// DefaultFilename is the destination of last resort.
const DefaultFilename = "recording.xdf"

// Resolve produces the output path for one recording session. fallback is
// the store's current filename value, consulted only when the session
// config names no destination at all. First match wins:
//
//  1. StorageLocation, expanded, used as-is
//  2. StudyRoot joined with the expanded PathTemplate
//  3. StudyRoot with a synthesized LabRecorder_<hostname>_<datetime>_eeg.xdf
//  4. PathTemplate expanded on its own
//  5. fallback
//
// The result always carries a .xdf extension and a sanitized base name,
// with ~ and environment references expanded.
func Resolve(cfg cfgfile.Map, fallback, hostname string, now time.Time) string {
	tokens := Tokens(cfg, hostname, now)
	storage := cfg.TrimmedString(cfgfile.KeyStorageLocation)
	studyRoot := cfg.TrimmedString(cfgfile.KeyStudyRoot)
	template := cfg.TrimmedString(cfgfile.KeyPathTemplate)

	var dest string
	switch {
	case storage != "":
		dest = Expand(storage, tokens)
	case studyRoot != "" && template != "":
		dest = filepath.Join(studyRoot, Expand(template, tokens))
	case studyRoot != "":
		name := fmt.Sprintf("LabRecorder_%s_%s_eeg.xdf", hostname, tokens[TokenDatetime])
		dest = filepath.Join(studyRoot, name)
	case template != "":
		dest = Expand(template, tokens)
	default:
		dest = fallback
		if dest == "" {
			dest = DefaultFilename
		}
	}

	if !strings.HasSuffix(strings.ToLower(dest), ".xdf") {
		dest += ".xdf"
	}
	return ExpandUserEnv(Sanitize(dest))
}
