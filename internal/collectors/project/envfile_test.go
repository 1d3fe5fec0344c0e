package project

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/envdrift/envdrift/internal/logger"
)

func TestParseEnvKeys_LineRules(t *testing.T) {
	keys := map[string]struct{}{}
	content := "A=1\n# comment\n\nB=2\nMALFORMED\n"
	parseEnvKeys(content, keys)

	if _, ok := keys["A"]; !ok {
		t.Error("expected key A")
	}
	if _, ok := keys["B"]; !ok {
		t.Error("expected key B")
	}
	if len(keys) != 2 {
		t.Errorf("expected exactly 2 keys, got %v", keys)
	}
}

func TestParseEnvKeys_TrimsAndSkips(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"padded key and value", "  KEY = value ", []string{"KEY"}},
		{"no equals sign", "NOTANENVLINE", nil},
		{"indented comment", "  # comment", nil},
		{"empty key before equals", "  =value", nil},
		{"equals only", "=", nil},
		{"value contains equals", "URL=https://host?a=b", []string{"URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := map[string]struct{}{}
			parseEnvKeys(tt.line, keys)

			got := make([]string, 0, len(keys))
			for k := range keys {
				got = append(got, k)
			}
			if len(tt.want) == 0 && len(got) != 0 {
				t.Errorf("expected no keys, got %v", got)
			}
			if len(tt.want) > 0 && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseEnvKeys_NeverLeaksValues(t *testing.T) {
	keys := map[string]struct{}{}
	content := "API_KEY=super-secret-token\nDB_PASS = hunter2 "
	parseEnvKeys(content, keys)

	for k := range keys {
		if strings.Contains(k, "super-secret-token") || strings.Contains(k, "hunter2") {
			t.Fatalf("env value leaked into key set: %q", k)
		}
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %v", keys)
	}
}

func TestCollectEnvKeys_MergesCandidateFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), "SHARED=1\nBASE_ONLY=1\n")
	writeFile(t, filepath.Join(root, ".env.local"), "SHARED=2\nLOCAL_ONLY=1\n")
	// .env.development and .env.production intentionally absent.
	writeFile(t, filepath.Join(root, ".env.custom"), "IGNORED_FILE=1\n")

	got := collectEnvKeys(root, logger.NewLogrus())
	want := []string{"BASE_ONLY", "LOCAL_ONLY", "SHARED"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCollectEnvKeys_NoFiles(t *testing.T) {
	got := collectEnvKeys(t.TempDir(), logger.NewLogrus())
	if len(got) != 0 {
		t.Errorf("expected no keys, got %v", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
