package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"labrec/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	base := setupCLIHome(t)

	target := filepath.Join(base, "cfg", "config.json")
	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when target already exists")
	}

	out, _, err = runCLI(t, "config", "validate", "--config", target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, target)
}

func TestConfigValidateWithoutFile(t *testing.T) {
	setupCLIHome(t)

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Configuration valid")
}

func TestConfigShowJSON(t *testing.T) {
	setupCLIHome(t)

	out, _, err := runCLI(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("decode tree: %v\noutput: %s", err, out)
	}
	if tree["filename"] != "recording.xdf" {
		t.Fatalf("filename = %v", tree["filename"])
	}
	remote, ok := tree["remote_control"].(map[string]any)
	if !ok || remote["port"] != float64(22345) {
		t.Fatalf("remote_control = %v", tree["remote_control"])
	}
}

func TestConfigShowTable(t *testing.T) {
	setupCLIHome(t)

	out, _, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "remote_control.port")
	requireContains(t, out, "22345")
}

func TestConfigConvert(t *testing.T) {
	base := setupCLIHome(t)
	cfgPath := testsupport.WriteConfig(t, "legacy.cfg",
		"StorageLocation="+filepath.Join(base, "rec.xdf")+"\n"+
			"RCSEnabled=0\n"+
			"AutoStart=1\n")
	target := filepath.Join(base, "converted.json")

	out, _, err := runCLI(t, "config", "convert", "--config", cfgPath, "--out", target)
	if err != nil {
		t.Fatalf("config convert: %v", err)
	}
	requireContains(t, out, "Converted")

	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read converted file: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		t.Fatalf("decode converted file: %v", err)
	}
	if tree["filename"] != filepath.Join(base, "rec.xdf") {
		t.Fatalf("filename = %v", tree["filename"])
	}
	remote, ok := tree["remote_control"].(map[string]any)
	if !ok || remote["enabled"] != false {
		t.Fatalf("remote_control = %v", tree["remote_control"])
	}
	if tree["auto_start"] != true {
		t.Fatalf("auto_start = %v", tree["auto_start"])
	}
}

func TestConfigConvertRequiresLoadedConfig(t *testing.T) {
	base := setupCLIHome(t)

	_, _, err := runCLI(t, "config", "convert", "--out", filepath.Join(base, "out.json"))
	if err == nil {
		t.Fatal("expected error without a loaded config")
	}
	requireContains(t, err.Error(), "no configuration file loaded")
}
