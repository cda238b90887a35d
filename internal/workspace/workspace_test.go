package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_Lifecycle(t *testing.T) {
	base := t.TempDir()
	mgr := NewManager(base)

	if _, err := mgr.WriteFile("x", nil); err == nil {
		t.Fatal("WriteFile before Create should fail")
	}

	if err := mgr.Create(); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	wsPath := mgr.Path()
	if !strings.HasPrefix(filepath.Base(wsPath), "sassdoc-") {
		t.Errorf("unexpected workspace name: %s", wsPath)
	}

	p, err := mgr.WriteFile(".sassdocrc", []byte("dest: ./docs\n"))
	if err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if data, err := os.ReadFile(p); err != nil || string(data) != "dest: ./docs\n" {
		t.Fatalf("unexpected file content %q (%v)", data, err)
	}

	if err := mgr.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if _, err := os.Stat(wsPath); !os.IsNotExist(err) {
		t.Errorf("workspace still exists after cleanup: %s", wsPath)
	}
	if err := mgr.Cleanup(); err != nil {
		t.Errorf("second Cleanup() should be a no-op, got %v", err)
	}
}

func TestManager_UniqueDirectories(t *testing.T) {
	base := t.TempDir()
	a, b := NewManager(base), NewManager(base)
	if err := a.Create(); err != nil {
		t.Fatal(err)
	}
	if err := b.Create(); err != nil {
		t.Fatal(err)
	}
	if a.Path() == b.Path() {
		t.Fatalf("expected distinct workspaces, both got %s", a.Path())
	}
}
