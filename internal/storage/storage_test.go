package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStore_Download(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "cases", "case_9"), 0o755); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	content := []byte("Dear Policyholder, your claim has been denied.")
	if err := os.WriteFile(filepath.Join(root, "cases", "case_9", "denial.txt"), content, 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	store := NewLocalStore(root)
	ctx := context.Background()

	t.Run("Reads file under root", func(t *testing.T) {
		got, err := store.Download(ctx, "cases/case_9/denial.txt")
		if err != nil {
			t.Fatalf("Download failed: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Content mismatch: got %q", got)
		}
	})

	t.Run("Leading slash is tolerated", func(t *testing.T) {
		if _, err := store.Download(ctx, "/cases/case_9/denial.txt"); err != nil {
			t.Errorf("Download failed: %v", err)
		}
	})

	t.Run("Missing file returns error", func(t *testing.T) {
		if _, err := store.Download(ctx, "cases/case_9/ghost.txt"); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("Cancelled context aborts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := store.Download(cancelled, "cases/case_9/denial.txt"); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestLocalStore_PathEscape(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(filepath.Dir(root), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() { os.Remove(outside) })

	store := NewLocalStore(root)

	for _, path := range []string{
		"../secret.txt",
		"cases/../../secret.txt",
	} {
		if got, err := store.Download(context.Background(), path); err == nil {
			t.Errorf("path %q escaped the root, read %q", path, got)
		}
	}
}
