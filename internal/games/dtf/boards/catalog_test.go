package boards

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
	"github.com/vovakirdan/destroy-the-flags/internal/storage"
)

func TestBuiltins(t *testing.T) {
	all, err := Builtins()
	if err != nil {
		t.Fatalf("Builtins: %v", err)
	}
	want := map[string][2]int{
		"duel":     {7, 5},
		"mirrors":  {9, 7},
		"standard": {11, 9},
	}
	if len(all) != len(want) {
		t.Fatalf("got %d built-ins, want %d", len(all), len(want))
	}
	for _, b := range all {
		size, ok := want[b.ID]
		if !ok {
			t.Errorf("unexpected built-in %q", b.ID)
			continue
		}
		if b.Width != size[0] || b.Height != size[1] {
			t.Errorf("%s is %dx%d, want %dx%d", b.ID, b.Width, b.Height, size[0], size[1])
		}
		if b.Source != SourceBuiltin {
			t.Errorf("%s source = %q", b.ID, b.Source)
		}
		board, err := b.New(core.DefaultRules())
		if err != nil {
			t.Errorf("%s: New: %v", b.ID, err)
			continue
		}
		if board.IsGameOver() {
			t.Errorf("%s starts finished", b.ID)
		}
	}
}

func TestBuiltinMetadata(t *testing.T) {
	c := NewCatalog("")
	std, err := c.Get("standard")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if std.Name != "Standard" || std.Description == "" {
		t.Errorf("standard metadata = %q / %q", std.Name, std.Description)
	}

	duel, err := c.Get("duel")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	rules := duel.RulesFor(core.DefaultRules())
	if rules.MovesPerTurn != 2 || rules.StunTurns != core.DefaultStunTurns {
		t.Errorf("duel rules = %+v", rules)
	}
	board, err := duel.New(core.DefaultRules())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if board.MovesRemaining() != 2 {
		t.Errorf("duel budget = %d, want 2", board.MovesRemaining())
	}
}

func TestCatalogDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"tiny.txt":      "# name: Tiny\nGF00 RF00\n",
		"nested/x.yaml": "id: custom\nrows:\n  - \"GF00 **** RF00\"\n",
		"standard.dtf":  "GF00 RF00\n",
		"broken.txt":    "GQ00\n",
		"notes.md":      "not a board",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := NewCatalog(dir)
	ids, err := c.IDs()
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	want := []string{"custom", "duel", "mirrors", "standard", "tiny"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	std, err := c.Get("standard")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if std.Source == SourceBuiltin || std.Width != 2 {
		t.Errorf("directory board should replace the built-in, got %s %dx%d", std.Source, std.Width, std.Height)
	}

	if _, err := c.Get("missing"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("Get(missing) error = %v", err)
	}
}

func TestCatalogMissingDirectory(t *testing.T) {
	c := NewCatalog(filepath.Join(t.TempDir(), "nope"))
	all, err := c.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d boards, want the 3 built-ins", len(all))
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.txt")
	if err := os.WriteFile(path, []byte("GF00 **** RF00\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCatalog("")

	b, err := c.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(path): %v", err)
	}
	if b.ID != "arena" || b.Source != path {
		t.Errorf("resolved %q from %q", b.ID, b.Source)
	}
	if _, err := c.Resolve("mirrors"); err != nil {
		t.Errorf("Resolve(mirrors): %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	duel, err := NewCatalog("").Get("duel")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for _, name := range []string{"out.yaml", "out.txt"} {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(duel, name)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			back, err := Parse(data, name)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if back.Width != duel.Width || back.Height != duel.Height || back.Name != duel.Name {
				t.Errorf("round trip = %+v", back.Board)
			}
		})
	}
	if _, err := Encode(duel, "out.json"); err == nil {
		t.Error("Encode should reject unknown extensions")
	}
}

type fakeLibrary struct {
	records []storage.BoardRecord
}

func (f fakeLibrary) ListBoards() ([]storage.BoardRecord, error) {
	return f.records, nil
}

func TestCatalogLibrary(t *testing.T) {
	lib := fakeLibrary{records: []storage.BoardRecord{
		{ID: "mine", Name: "Mine", Layout: "GF00 **** RF00\n", MovesPerTurn: 1},
		{ID: "mirrors", Name: "My Mirrors", Layout: "GF00 RF00\n"},
		{ID: "broken", Layout: "GQ00\n"},
	}}
	c := &Catalog{Library: lib}

	mine, err := c.Get("mine")
	if err != nil {
		t.Fatalf("Get(mine): %v", err)
	}
	if mine.Source != SourceLibrary || mine.RulesFor(core.DefaultRules()).MovesPerTurn != 1 {
		t.Errorf("mine = %+v", mine)
	}
	mirrors, err := c.Get("mirrors")
	if err != nil {
		t.Fatalf("Get(mirrors): %v", err)
	}
	if mirrors.Name != "My Mirrors" {
		t.Error("library board should replace the built-in")
	}
	if _, err := c.Get("broken"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("broken layout should be skipped, got %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	duel, err := NewCatalog("").Get("duel")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	back, err := FromRecord(ToRecord(duel))
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if back.ID != duel.ID || back.Rules != duel.Rules || back.Width != duel.Width {
		t.Errorf("round trip = %+v", back.Board)
	}
}
