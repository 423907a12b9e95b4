// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads parser credentials from a directory of plain-text
// files. The filename is the key and the trimmed contents are the value.
//
// Recognised keys: corenlp-username, corenlp-password.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Keys read by the CoreNLP backend. A CoreNLP server started with
// -username/-password requires HTTP basic auth on every request.
const (
	KeyCoreNLPUsername = "corenlp-username"
	KeyCoreNLPPassword = "corenlp-password"
)

// Secrets maps key names to values.
type Secrets map[string]string

// Get returns the value for key, or fallback when fallback is non-empty or
// the key is absent. Explicit configuration wins over the secrets directory.
func (s Secrets) Get(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}

// Keys returns the loaded key names, sorted. Values are never logged.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads all regular, non-hidden files in dir. A missing directory is
// not an error. Unreadable files are skipped with a warning.
func Load(dir string, log *zap.Logger) (Secrets, error) {
	if log == nil {
		log = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("skipping unreadable secret", zap.String("key", name), zap.Error(err))
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}
