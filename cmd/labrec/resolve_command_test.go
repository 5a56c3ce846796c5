package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"labrec/internal/testsupport"
)

func TestResolveLegacyConfig(t *testing.T) {
	base := setupCLIHome(t)
	cfgPath := testsupport.WriteConfig(t, "session.cfg",
		"StorageLocation="+filepath.Join(base, "out", "session_%r.xdf")+"\n"+
			"RCSPort=16571\n")

	out, _, err := runCLI(t, "resolve", "--config", cfgPath, "--no-history")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, "Output file: "+filepath.Join(base, "out", "session_01.xdf"))
	requireContains(t, out, "Config: "+cfgPath)
	requireContains(t, out, "port 16571")
}

func TestResolveJSONOutput(t *testing.T) {
	base := setupCLIHome(t)
	cfgPath := testsupport.WriteConfig(t, "session.cfg",
		"StudyRoot="+base+"\n"+
			"PathTemplate=exp/%b_block.xdf\n"+
			"RequiredStreams=\"EEG\",\"Markers\"\n")

	out, _, err := runCLI(t, "resolve", "--config", cfgPath, "--no-history", "--json")
	if err != nil {
		t.Fatalf("resolve --json: %v", err)
	}

	var report resolveReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\noutput: %s", err, out)
	}
	if want := filepath.Join(base, "exp", "task_block.xdf"); report.Filename != want {
		t.Fatalf("filename = %q, want %q", report.Filename, want)
	}
	if report.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if len(report.RequiredStreams) != 2 || report.RequiredStreams[0] != "EEG" {
		t.Fatalf("required streams = %v", report.RequiredStreams)
	}
}

func TestResolveMissingExplicitConfig(t *testing.T) {
	setupCLIHome(t)

	_, _, err := runCLI(t, "resolve", "--config", "/nonexistent/session.cfg", "--no-history")
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	requireContains(t, err.Error(), "config file not found")
}

func TestResolveDefaultsWithoutConfig(t *testing.T) {
	setupCLIHome(t)

	out, _, err := runCLI(t, "resolve", "--no-history")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, "Output file: recording.xdf")
	requireContains(t, out, "Remote control: enabled (port 22345)")
}

func TestResolveRecordsHistory(t *testing.T) {
	base := setupCLIHome(t)
	cfgPath := testsupport.WriteConfig(t, "session.cfg",
		"StorageLocation="+filepath.Join(base, "a.xdf")+"\n")
	dbPath := filepath.Join(base, "hist", "history.db")

	for i := 0; i < 2; i++ {
		if _, _, err := runCLI(t, "resolve", "--config", cfgPath, "--history-db", dbPath); err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
	}

	out, _, err := runCLI(t, "history", "list", "--history-db", dbPath, "--json")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode entries: %v\noutput: %s", err, out)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if got := entries[0]["resolved_path"]; got != filepath.Join(base, "a.xdf") {
		t.Fatalf("resolved_path = %v", got)
	}

	out, _, err = runCLI(t, "history", "clear", "--history-db", dbPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Deleted 2 entries")

	out, _, err = runCLI(t, "history", "list", "--history-db", dbPath)
	if err != nil {
		t.Fatalf("history list after clear: %v", err)
	}
	requireContains(t, out, "History database: "+dbPath)
	requireContains(t, out, "No resolutions recorded yet")
}

func TestCheckCommand(t *testing.T) {
	base := setupCLIHome(t)
	cfgPath := testsupport.WriteConfig(t, "session.cfg",
		"StorageLocation="+filepath.Join(base, "rec", "out.xdf")+"\n")

	out, _, err := runCLI(t, "check", "--config", cfgPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "Config file")
	requireContains(t, out, "Output directory")
	requireContains(t, out, "Free space")
}
