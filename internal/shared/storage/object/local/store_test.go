package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.Save(ctx, "venue_contract.txt", strings.NewReader("terms"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != int64(len("terms")) {
		t.Fatalf("expected %d bytes written, got %d", len("terms"), n)
	}

	rc, err := store.Open(ctx, "venue_contract.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "terms" {
		t.Fatalf("expected terms, got %q", data)
	}
}

func TestSaveOverwritesSameName(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Save(ctx, "notes.txt", strings.NewReader("first")); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if _, err := store.Save(ctx, "notes.txt", strings.NewReader("second")); err != nil {
		t.Fatalf("save second: %v", err)
	}

	rc, err := store.Open(ctx, "notes.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "second" {
		t.Fatalf("expected overwrite to win, got %q", data)
	}
}

func TestSaveRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Save(context.Background(), "../escape.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for traversal filename")
	}
}
