package drain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/format"
)

func TestNewFileDrain_RequiresPath(t *testing.T) {
	if _, err := NewFileDrain(FileConfig{}); err == nil {
		t.Error("Expected error for missing path")
	}
}

func TestFileDrain_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	d, err := NewFileDrain(FileConfig{
		Path:      path,
		Formatter: format.NewTextFormatter(format.Config{}),
	})
	if err != nil {
		t.Fatalf("NewFileDrain failed: %v", err)
	}

	logThrough(t, d, core.WarningLevel, "to disk",
		[]core.Field{{Key: "service", Kind: core.StringKind, Str: "x"}}, nil)
	logThrough(t, d, core.ErrorLevel, "also to disk", nil, nil)

	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "to disk") || !strings.Contains(content, "service=x") {
		t.Errorf("Unexpected file content: %q", content)
	}
	if !strings.Contains(content, "also to disk") {
		t.Errorf("Second record missing: %q", content)
	}
	if strings.Count(content, "\n") != 2 {
		t.Errorf("Expected 2 lines, got %d", strings.Count(content, "\n"))
	}
}

func TestFileDrain_JSONFormatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	d, err := NewFileDrain(FileConfig{
		Path:      path,
		Formatter: format.NewJSONFormatter(format.Config{}),
	})
	if err != nil {
		t.Fatalf("NewFileDrain failed: %v", err)
	}

	logThrough(t, d, core.InfoLevel, "structured", nil, nil)
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"structured"`) {
		t.Errorf("Unexpected file content: %q", string(data))
	}
}
