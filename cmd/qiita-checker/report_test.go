// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sotoiwa/qiita-checker/internal/config"
	qerrors "github.com/sotoiwa/qiita-checker/internal/errors"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: 0,
		},
		{
			name: "missing token",
			err:  fmt.Errorf("environment variable QIITA_TOKEN: %w", qerrors.ErrMissingToken),
			want: 2,
		},
		{
			name: "invalid token",
			err:  qerrors.ErrInvalidToken,
			want: 2,
		},
		{
			name: "article not found",
			err:  fmt.Errorf("GET https://qiita.com/api/v2/items/x returned status 404: %w", qerrors.ErrNotFound),
			want: 2,
		},
		{
			name: "rate limited",
			err:  qerrors.ErrRateLimited,
			want: 2,
		},
		{
			name: "network failure",
			err:  fmt.Errorf("GET https://qiita.com/api/v2/authenticated_user/items: %w", qerrors.ErrNetworkFailure),
			want: 3,
		},
		{
			name: "generic error",
			err:  errors.New("something else"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpenDestination_Stdout(t *testing.T) {
	cfg := config.DefaultConfig()

	w, closeFn, err := openDestination(cfg, "")
	if err != nil {
		t.Fatalf("openDestination failed: %v", err)
	}
	defer closeFn()

	if w != os.Stdout {
		t.Error("empty filename should resolve to stdout")
	}
}

func TestOpenDestination_File(t *testing.T) {
	cfg := config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "out.csv")

	w, closeFn, err := openDestination(cfg, path)
	if err != nil {
		t.Fatalf("openDestination failed: %v", err)
	}
	if _, err := fmt.Fprint(w, "Title,Views\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != "Title,Views\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestOpenDestination_SandboxRedirect(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sandbox.MarkerEnv = "QIITA_CHECKER_TEST_MARKER"
	cfg.Sandbox.Dir = t.TempDir()
	t.Setenv(cfg.Sandbox.MarkerEnv, "1")

	w, closeFn, err := openDestination(cfg, "/home/user/out.csv")
	if err != nil {
		t.Fatalf("openDestination failed: %v", err)
	}
	fmt.Fprint(w, "x")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.Sandbox.Dir, "out.csv")); err != nil {
		t.Errorf("sandboxed file not created: %v", err)
	}
}

func TestRootCommand_FlagDefaults(t *testing.T) {
	cmd := newRootCommand()

	for flag, want := range map[string]string{
		"output":   "",
		"filename": "",
		"sort-by":  "",
		"reverse":  "false",
		"item-id":  "",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Fatalf("flag --%s not registered", flag)
		}
		if f.DefValue != want {
			t.Errorf("flag --%s default = %q, want %q", flag, f.DefValue, want)
		}
	}
}
