package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fontsources/internal/catalog"
	"fontsources/internal/sourcefile"
)

const fontListBody = `[
	{"family_name": "Test Font", "is_free": true, "designer": "Jane"},
	{"family_name": "Open Sans", "family_urlname": "open-sans", "classification": {"name": "Sans Serif"},
	 "license": {"name": "Apache 2.0", "url": "https://example.test/apache"}},
	{"family_name": ""}
]`

func isolateCLI(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("FONTSOURCES_API_ENDPOINT", "")
	t.Setenv("FONTSOURCES_OUTPUT", "")
	t.Setenv("FONTSOURCES_LOG_LEVEL", "")
	return base
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func fontListServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTranslateWritesSourceFile(t *testing.T) {
	base := isolateCLI(t)
	srv := fontListServer(t, http.StatusOK, fontListBody)
	output := filepath.Join(base, "sources", "font-squirrel.json")

	stdout, _, err := runCLI(t, "translate", "--endpoint", srv.URL, "--output", output, "--delay", "0s", "--json")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	var summary struct {
		Output     string `json:"output"`
		TotalFonts int    `json:"total_fonts"`
		Skipped    int    `json:"skipped"`
		Digest     string `json:"fonts_digest"`
		RunID      string `json:"run_id"`
	}
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("decode summary %q: %v", stdout, err)
	}
	if summary.Output != output || summary.TotalFonts != 2 || summary.Skipped != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Digest == "" || summary.RunID == "" {
		t.Fatalf("expected digest and run id, got %+v", summary)
	}

	doc, err := sourcefile.Read(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if doc.SourceInfo.APIEndpoint != srv.URL || doc.SourceInfo.Name != "Font Squirrel" {
		t.Fatalf("unexpected header %+v", doc.SourceInfo)
	}
	entry, ok := doc.Fonts["squirrel.open-sans"]
	if !ok {
		t.Fatalf("expected squirrel.open-sans in %v", doc.Fonts)
	}
	if entry.License != "Apache 2.0" || entry.SourceURL != "https://www.fontsquirrel.com/fonts/open-sans" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if _, err := os.Stat(output + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected no temp file, stat err=%v", err)
	}
}

func TestTranslateFetchFailureWritesEmptyCatalog(t *testing.T) {
	base := isolateCLI(t)
	srv := fontListServer(t, http.StatusServiceUnavailable, "down")
	output := filepath.Join(base, "out.json")

	stdout, _, err := runCLI(t, "translate", "--endpoint", srv.URL, "--output", output, "--delay", "0s")
	if err != nil {
		t.Fatalf("translate should absorb fetch failures: %v", err)
	}
	requireContains(t, stdout, "Wrote 0 fonts")
	requireContains(t, stdout, "fetch failed")

	doc, err := sourcefile.Read(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if doc.SourceInfo.TotalFonts != 0 || len(doc.Fonts) != 0 {
		t.Fatalf("expected empty catalog, got %+v", doc.SourceInfo)
	}
}

func TestTranslateAcceptsWarningLogLevel(t *testing.T) {
	base := isolateCLI(t)
	srv := fontListServer(t, http.StatusOK, `[{"family_name":"Good Font"}]`)
	output := filepath.Join(base, "out.json")

	stdout, _, err := runCLI(t, "--log-level", "warning", "translate", "--endpoint", srv.URL, "--output", output, "--delay", "0s")
	if err != nil {
		t.Fatalf("translate with --log-level warning: %v", err)
	}
	requireContains(t, stdout, "Wrote 1 fonts")
}

func TestTranslateRejectsNegativeDelay(t *testing.T) {
	base := isolateCLI(t)
	_, _, err := runCLI(t, "translate", "--endpoint", "http://127.0.0.1:1/", "--output", filepath.Join(base, "x.json"), "--delay=-1s")
	if err == nil || !strings.Contains(err.Error(), "--delay") {
		t.Fatalf("expected delay error, got %v", err)
	}
}

func TestShowRendersTable(t *testing.T) {
	base := isolateCLI(t)
	path := filepath.Join(base, "fonts.json")
	doc := catalog.NewDocument(catalog.SourceInfo{
		Name:        "Font Squirrel",
		APIEndpoint: "https://www.fontsquirrel.com/api/fontlist/all",
		Version:     "1.0",
	})
	doc.Put("squirrel.b-font", catalog.FontEntry{Name: "B Font", License: "OFL", Popularity: 70, Tags: []string{"free"}})
	doc.Put("squirrel.a-font", catalog.FontEntry{Name: "A Font", License: "Unknown", Popularity: 50, Tags: []string{"commercial"}})
	doc.Seal(time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))
	if err := sourcefile.Write(context.Background(), path, doc); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, _, err := runCLI(t, "show", "--path", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Total fonts:  2")
	requireContains(t, out, "squirrel.a-font")
	requireContains(t, out, "B Font")
	if strings.Index(out, "squirrel.a-font") > strings.Index(out, "squirrel.b-font") {
		t.Fatalf("expected rows sorted by key:\n%s", out)
	}

	out, _, err = runCLI(t, "show", "--path", path, "--limit", "1", "--json")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	var payload struct {
		Fonts []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"fonts"`
		Truncated bool `json:"truncated"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode show output: %v", err)
	}
	if len(payload.Fonts) != 1 || payload.Fonts[0].Key != "squirrel.a-font" || !payload.Truncated {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestConfigInitShowValidate(t *testing.T) {
	base := isolateCLI(t)
	target := filepath.Join(base, "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, target)

	out, _, err = runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[source]")
	requireContains(t, out, "https://www.fontsquirrel.com/api/fontlist/all")
}

func TestConfigValidateReportsErrors(t *testing.T) {
	base := isolateCLI(t)
	target := filepath.Join(base, "bad.toml")
	if err := os.WriteFile(target, []byte("[pipeline]\nrecord_delay_ms = -5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCLI(t, "--config", target, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	isolateCLI(t)
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "fontsources ")
}
