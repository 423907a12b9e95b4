// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyCoreNLPUsername, "  parser  \n")
				writeFile(t, dir, KeyCoreNLPPassword, "hunter2\n")
				return dir
			},
			want: Secrets{KeyCoreNLPUsername: "parser", KeyCoreNLPPassword: "hunter2"},
		},
		{
			name: "missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files, dotfiles and directories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyCoreNLPUsername, "parser")
				writeFile(t, dir, "empty", "   \n\t")
				writeFile(t, dir, ".gitkeep", "x")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Secrets{KeyCoreNLPUsername: "parser"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	writeFile(t, dir, KeyCoreNLPUsername, "parser")
	bad := filepath.Join(dir, KeyCoreNLPPassword)
	require.NoError(t, os.WriteFile(bad, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(bad, 0o644) })

	core, logs := observer.New(zap.WarnLevel)
	got, err := Load(dir, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, Secrets{KeyCoreNLPUsername: "parser"}, got)
	assert.Equal(t, 1, logs.FilterMessage("skipping unreadable secret").Len())
}

func TestGetAndKeys(t *testing.T) {
	s := Secrets{KeyCoreNLPPassword: "p", KeyCoreNLPUsername: "u"}

	assert.Equal(t, "u", s.Get(KeyCoreNLPUsername, ""))
	assert.Equal(t, "override", s.Get(KeyCoreNLPUsername, "override"))
	assert.Empty(t, s.Get("missing", ""))
	assert.Equal(t, []string{KeyCoreNLPPassword, KeyCoreNLPUsername}, s.Keys())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
