package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/envdrift/envdrift/internal/logger"
)

// envFileNames is the fixed, ordered list of env-definition files scanned at
// the project root. Not configurable.
var envFileNames = []string{".env", ".env.local", ".env.development", ".env.production"}

// collectEnvKeys reads every candidate env file that exists under root and
// returns the union of their variable names, sorted. Missing files and
// malformed lines are skipped silently. Values are discarded the moment a
// line is split and never stored or logged; only names leave this function.
func collectEnvKeys(root string, log logger.Logger) []string {
	keys := make(map[string]struct{})

	for _, name := range envFileNames {
		path := filepath.Join(root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		n := parseEnvKeys(string(data), keys)
		log.WithField("file", name).WithField("keys", n).Debug("scanned env file")
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	return sorted
}

// parseEnvKeys extracts variable names from env file content into keys and
// returns how many lines contributed. Line rules: trim whitespace; skip
// blank lines and comments; split on the first '='; skip lines with no '='
// or an empty name. Keys are case-sensitive.
func parseEnvKeys(content string, keys map[string]struct{}) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}

		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}

		keys[key] = struct{}{}
		count++
	}
	return count
}
