package cfgfile_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"labrec/internal/cfgfile"
)

func TestParseValueIntegers(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 1},
		{"42", 42},
		{"-7", -7},
		{"+15", 15},
		{"  22345  ", 22345},
	}
	for _, tc := range cases {
		v := cfgfile.ParseValue(tc.in)
		if v.Kind() != cfgfile.KindInt {
			t.Fatalf("ParseValue(%q) kind = %v, want int", tc.in, v.Kind())
		}
		if n, _ := v.Int(); n != tc.want {
			t.Fatalf("ParseValue(%q) = %d, want %d", tc.in, n, tc.want)
		}
	}
}

func TestParseValueFloats(t *testing.T) {
	cases := []string{"1.5", "-0.25", "+.5", ".125"}
	for _, in := range cases {
		v := cfgfile.ParseValue(in)
		if v.Kind() != cfgfile.KindFloat {
			t.Fatalf("ParseValue(%q) kind = %v, want float", in, v.Kind())
		}
	}
	if v := cfgfile.ParseValue("2.0"); v.String() != "2" {
		t.Fatalf("float coercion: got %q", v.String())
	}
}

func TestParseValueZeroOneStayIntegers(t *testing.T) {
	for _, in := range []string{"0", "1"} {
		v := cfgfile.ParseValue(in)
		if v.Kind() != cfgfile.KindInt {
			t.Fatalf("ParseValue(%q) kind = %v, want int", in, v.Kind())
		}
	}
}

func TestParseValueQuotedLists(t *testing.T) {
	v := cfgfile.ParseValue(`"a", "b"`)
	if v.Kind() != cfgfile.KindList {
		t.Fatalf("kind = %v, want list", v.Kind())
	}
	if got := v.Strings(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("list = %v", got)
	}

	// One quoted element unwraps to a plain string.
	solo := cfgfile.ParseValue(`"solo"`)
	if solo.Kind() != cfgfile.KindString {
		t.Fatalf("solo kind = %v, want string", solo.Kind())
	}
	if solo.String() != "solo" {
		t.Fatalf("solo = %q", solo.String())
	}

	// Mixed quoting is tolerated item by item.
	mixed := cfgfile.ParseValue(`"EEG (host)", 'Markers', plain`)
	if got := mixed.Strings(); !reflect.DeepEqual(got, []string{"EEG (host)", "Markers", "plain"}) {
		t.Fatalf("mixed = %v", got)
	}
}

func TestParseValueFallbacks(t *testing.T) {
	if v := cfgfile.ParseValue(""); v.Kind() != cfgfile.KindString || v.String() != "" {
		t.Fatalf("empty value: kind=%v str=%q", v.Kind(), v.String())
	}
	if v := cfgfile.ParseValue("sub-%p/ses-%s"); v.Kind() != cfgfile.KindString {
		t.Fatalf("template text should stay a string, got kind %v", v.Kind())
	}
	// Digit runs beyond int64 fall through to string rather than failing.
	huge := "99999999999999999999999999"
	if v := cfgfile.ParseValue(huge); v.Kind() != cfgfile.KindString || v.String() != huge {
		t.Fatalf("overflow value: kind=%v str=%q", v.Kind(), v.String())
	}
}

func TestParseCommentStripping(t *testing.T) {
	cfg := cfgfile.Parse("key=1 ; trailing\nval=a;b\n# full line\n  ; indented comment\nother=2 # hash trailing\n")

	if got := cfg.TrimmedString("key"); got != "1" {
		t.Fatalf("key = %q, want 1", got)
	}
	// The semicolon hugs the value text, so it is not a comment marker.
	if got := cfg.TrimmedString("val"); got != "a;b" {
		t.Fatalf("val = %q, want a;b", got)
	}
	if got := cfg.TrimmedString("other"); got != "2" {
		t.Fatalf("other = %q, want 2", got)
	}
	if len(cfg) != 3 {
		t.Fatalf("expected 3 entries, got %d (%v)", len(cfg), cfg)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	cfg := cfgfile.Parse("no equals here\n\n   \nParticipant = P042\n")
	if len(cfg) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(cfg))
	}
	if got := cfg.TrimmedString(cfgfile.KeyParticipant); got != "P042" {
		t.Fatalf("Participant = %q", got)
	}
}

func TestParseSplitsOnFirstEquals(t *testing.T) {
	cfg := cfgfile.Parse("PathTemplate=sub=%p.xdf\n")
	if got := cfg.TrimmedString(cfgfile.KeyPathTemplate); got != "sub=%p.xdf" {
		t.Fatalf("PathTemplate = %q", got)
	}
}

func TestParseLastDuplicateWins(t *testing.T) {
	cfg := cfgfile.Parse("Run=01\nRun=02\n")
	if got := cfg.TrimmedString(cfgfile.KeyRun); got != "02" {
		t.Fatalf("Run = %q, want 02", got)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "LabRecorder.cfg")
	content := "; LabRecorder session config\nStudyRoot=/data/study\nRCSPort=22345\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}

	cfg, err := cfgfile.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := cfg.TrimmedString(cfgfile.KeyStudyRoot); got != "/data/study" {
		t.Fatalf("StudyRoot = %q", got)
	}
	port, ok := cfg[cfgfile.KeyRCSPort]
	if !ok || port.Kind() != cfgfile.KindInt {
		t.Fatalf("RCSPort missing or wrong kind: %v", port.Kind())
	}

	if _, err := cfgfile.ParseFile(filepath.Join(dir, "missing.cfg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValueCoercions(t *testing.T) {
	if b, ok := cfgfile.IntValue(1).Bool(); !ok || !b {
		t.Fatal("IntValue(1).Bool() should be true")
	}
	if b, ok := cfgfile.StringValue("0").Bool(); !ok || b {
		t.Fatal("StringValue(0).Bool() should be false")
	}
	if _, ok := cfgfile.StringValue("yes").Int(); ok {
		t.Fatal("non-numeric string should not coerce to int")
	}
	if got := cfgfile.StringValue("solo").Strings(); !reflect.DeepEqual(got, []string{"solo"}) {
		t.Fatalf("scalar Strings() = %v", got)
	}
}
