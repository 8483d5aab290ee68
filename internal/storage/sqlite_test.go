package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndLoadBoard(t *testing.T) {
	store := openTestStore(t)

	rec := BoardRecord{
		ID:           "arena",
		Name:         "Arena",
		Description:  "Test board",
		Layout:       "GF00 **** RF00\n",
		MovesPerTurn: 2,
	}
	if err := store.SaveBoard(rec); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	got, err := store.LoadBoard("arena")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if got.Name != rec.Name || got.Layout != rec.Layout || got.MovesPerTurn != 2 || got.StunTurns != 0 {
		t.Errorf("LoadBoard() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBoard(BoardRecord{ID: "a", Name: "First", Layout: "GF00 RF00\n"}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if err := store.SaveBoard(BoardRecord{ID: "a", Name: "Second", Layout: "RF00 GF00\n"}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	n, err := store.CountBoards()
	if err != nil {
		t.Fatalf("CountBoards() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 board, got %d", n)
	}
	got, err := store.LoadBoard("a")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if got.Name != "Second" {
		t.Errorf("Expected replaced name, got %q", got.Name)
	}
}

func TestStoreListAndDelete(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := store.SaveBoard(BoardRecord{ID: id, Name: id, Layout: "GF00 RF00\n"}); err != nil {
			t.Fatalf("SaveBoard(%s) failed: %v", id, err)
		}
	}

	list, err := store.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards() failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(list) != len(want) {
		t.Fatalf("Expected %d boards, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("list[%d] = %q, want %q", i, list[i].ID, id)
		}
	}

	if err := store.DeleteBoard("mid"); err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if _, err := store.LoadBoard("mid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadBoard() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteBoard("mid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteBoard() error = %v, want ErrNotFound", err)
	}
}

func TestStoreRejectsEmptyID(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveBoard(BoardRecord{Layout: "GF00 RF00\n"}); err == nil {
		t.Error("SaveBoard() should reject an empty ID")
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBoard(BoardRecord{ID: "keep", Name: "Keep", Layout: "GF00 RF00\n"}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.LoadBoard("keep"); err != nil {
		t.Errorf("LoadBoard() after reopen failed: %v", err)
	}
}
