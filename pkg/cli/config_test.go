package cli

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/haivivi/ringseq/pkg/ring"
)

func newTestConfig(t *testing.T) (*Config, string) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadConfigWithPath("testapp", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	return cfg, configPath
}

func TestContext_Validate(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		wantFail bool
		wantErr  error
	}{
		{"empty", Context{}, false, nil},
		{"full", Context{Backend: "list", Capacity: 8, Output: "json", LogLines: 20}, false, nil},
		{"backend case", Context{Backend: " Array "}, false, nil},
		{"bad backend", Context{Backend: "deque"}, true, ring.ErrUnknownBackend},
		{"bad capacity", Context{Capacity: -1}, true, ring.ErrInvalidCapacity},
		{"bad log lines", Context{LogLines: -3}, true, nil},
		{"bad output", Context{Output: "table"}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ctx.Validate()
			if (err != nil) != tt.wantFail {
				t.Fatalf("Validate() error = %v, wantFail %v", err, tt.wantFail)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestContext_RingBackend(t *testing.T) {
	var nilCtx *Context
	if got := nilCtx.RingBackend(); got != ring.BackendArray {
		t.Errorf("nil context backend = %q, want array", got)
	}
	if got := (&Context{}).RingBackend(); got != ring.BackendArray {
		t.Errorf("empty backend = %q, want array", got)
	}
	if got := (&Context{Backend: "LIST"}).RingBackend(); got != ring.BackendList {
		t.Errorf("backend = %q, want list", got)
	}
}

func TestLoadConfigWithPath_NewConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "testapp", "config.yaml")

	cfg, err := LoadConfigWithPath("testapp", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}

	if cfg.AppName != "testapp" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "testapp")
	}
	if cfg.Contexts == nil {
		t.Error("Contexts should be initialized")
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file should be created")
	}
}

func TestLoadConfigWithPath_InvalidContext(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	data := "contexts:\n  bad:\n    name: bad\n    backend: deque\n"
	if err := os.WriteFile(configPath, []byte(data), 0600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	_, err := LoadConfigWithPath("testapp", configPath)
	if !errors.Is(err, ring.ErrUnknownBackend) {
		t.Errorf("LoadConfigWithPath error = %v, want ErrUnknownBackend", err)
	}
}

func TestConfig_AddContext(t *testing.T) {
	cfg, _ := newTestConfig(t)

	err := cfg.AddContext("small", &Context{Backend: "list", Capacity: 3})
	if err != nil {
		t.Fatalf("AddContext error: %v", err)
	}

	ctx := cfg.Contexts["small"]
	if ctx == nil {
		t.Fatal("Context not added")
	}
	if ctx.Name != "small" {
		t.Errorf("Context.Name = %q, want %q", ctx.Name, "small")
	}
	if ctx.Capacity != 3 {
		t.Errorf("Context.Capacity = %d, want 3", ctx.Capacity)
	}
}

func TestConfig_AddContext_Invalid(t *testing.T) {
	cfg, _ := newTestConfig(t)

	if err := cfg.AddContext("bad", &Context{Capacity: -2}); err == nil {
		t.Error("AddContext should fail for negative capacity")
	}
	if _, ok := cfg.Contexts["bad"]; ok {
		t.Error("invalid context should not be stored")
	}
}

func TestConfig_DeleteContext(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.AddContext("dev", &Context{})
	cfg.UseContext("dev")

	if err := cfg.DeleteContext("dev"); err != nil {
		t.Fatalf("DeleteContext error: %v", err)
	}
	if _, ok := cfg.Contexts["dev"]; ok {
		t.Error("Context should be deleted")
	}
	if cfg.CurrentContext != "" {
		t.Errorf("CurrentContext = %q, want empty", cfg.CurrentContext)
	}

	if err := cfg.DeleteContext("missing"); err == nil {
		t.Error("DeleteContext should fail for non-existent context")
	}
}

func TestConfig_UseContext(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.AddContext("dev", &Context{})

	if err := cfg.UseContext("dev"); err != nil {
		t.Fatalf("UseContext error: %v", err)
	}
	if cfg.CurrentContext != "dev" {
		t.Errorf("CurrentContext = %q, want %q", cfg.CurrentContext, "dev")
	}

	if err := cfg.UseContext("missing"); err == nil {
		t.Error("UseContext should fail for non-existent context")
	}
}

func TestConfig_GetCurrentContext_NotSet(t *testing.T) {
	cfg, _ := newTestConfig(t)

	if _, err := cfg.GetCurrentContext(); err == nil {
		t.Error("GetCurrentContext should fail when no current context")
	}
}

func TestConfig_ResolveContext(t *testing.T) {
	cfg, _ := newTestConfig(t)

	// No contexts at all resolves to an empty context
	ctx, err := cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext('') error: %v", err)
	}
	if ctx.Backend != "" || ctx.Capacity != 0 {
		t.Errorf("empty resolve = %+v, want zero context", ctx)
	}

	cfg.AddContext("ctx1", &Context{Capacity: 1})
	cfg.AddContext("ctx2", &Context{Capacity: 2})
	cfg.UseContext("ctx1")

	// Resolve by name
	ctx, err = cfg.ResolveContext("ctx2")
	if err != nil {
		t.Fatalf("ResolveContext(ctx2) error: %v", err)
	}
	if ctx.Capacity != 2 {
		t.Errorf("Capacity = %d, want 2", ctx.Capacity)
	}

	// Resolve current (empty name)
	ctx, err = cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext('') error: %v", err)
	}
	if ctx.Capacity != 1 {
		t.Errorf("Capacity = %d, want 1", ctx.Capacity)
	}

	if _, err := cfg.ResolveContext("missing"); err == nil {
		t.Error("ResolveContext should fail for non-existent context")
	}
}

func TestConfig_ListContexts(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.AddContext("production", &Context{})
	cfg.AddContext("staging", &Context{})
	cfg.AddContext("development", &Context{})

	want := []string{"development", "production", "staging"}
	if got := cfg.ListContexts(); !slices.Equal(got, want) {
		t.Errorf("ListContexts() = %v, want %v", got, want)
	}
}

func TestConfig_PathAndDir(t *testing.T) {
	cfg, configPath := newTestConfig(t)

	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Dir() != filepath.Dir(configPath) {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), filepath.Dir(configPath))
	}
}

func TestConfig_Persistence(t *testing.T) {
	cfg1, configPath := newTestConfig(t)
	cfg1.AddContext("test", &Context{
		Backend:  "list",
		Capacity: 16,
		Output:   "json",
		LogLines: 10,
	})
	cfg1.UseContext("test")

	// Load again
	cfg2, err := LoadConfigWithPath("testapp", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}

	if cfg2.CurrentContext != "test" {
		t.Errorf("CurrentContext = %q, want %q", cfg2.CurrentContext, "test")
	}

	ctx, err := cfg2.GetContext("test")
	if err != nil {
		t.Fatalf("GetContext error: %v", err)
	}
	want := Context{Name: "test", Backend: "list", Capacity: 16, Output: "json", LogLines: 10}
	if *ctx != want {
		t.Errorf("context = %+v, want %+v", *ctx, want)
	}
}
