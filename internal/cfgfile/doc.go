// Package cfgfile parses the line-oriented LabRecorder .cfg format into
// typed key/value pairs.
//
// The format is permissive: comments start with ';' or '#' (only when the
// marker opens the line or follows whitespace), malformed lines are skipped,
// and values are typed by inspection into strings, integers, floats, or
// quoted string lists. Nothing in this package returns a parse error for
// value text; every input yields a best-effort Value so existing .cfg files
// written by other recorder implementations keep loading.
package cfgfile
