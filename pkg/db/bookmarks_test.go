package db

import (
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing. The pool is
// pinned to one connection: each connection to :memory: is its own database.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestToggleBookmark(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	bookmarked, err := db.ToggleBookmark("c1")
	if err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if !bookmarked {
		t.Error("first toggle should bookmark")
	}

	got, err := db.IsBookmarked("c1")
	if err != nil {
		t.Fatalf("IsBookmarked() error = %v", err)
	}
	if !got {
		t.Error("c1 should be bookmarked")
	}

	// Double-toggle restores the original state.
	if bookmarked, _ = db.ToggleBookmark("c1"); bookmarked {
		t.Error("second toggle should remove the bookmark")
	}
	if got, _ = db.IsBookmarked("c1"); got {
		t.Error("c1 should no longer be bookmarked")
	}
}

// Concurrent toggles of one id must each succeed and leave a consistent
// final state; an even number of flips lands back on "not bookmarked".
func TestToggleBookmarkConcurrent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	const toggles = 16
	errs := make(chan error, toggles)
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.ToggleBookmark("c1"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("ToggleBookmark() error = %v", err)
	}

	got, err := db.IsBookmarked("c1")
	if err != nil {
		t.Fatalf("IsBookmarked() error = %v", err)
	}
	if got {
		t.Errorf("after %d toggles c1 should not be bookmarked", toggles)
	}
}

func TestIsBookmarkedUnknownID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	got, err := db.IsBookmarked("never-seen")
	if err != nil {
		t.Fatalf("IsBookmarked() error = %v", err)
	}
	if got {
		t.Error("unknown id reported as bookmarked")
	}
}

func TestListBookmarksPreservesInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, id := range []string{"c3", "c1", "c2"} {
		if _, err := db.ToggleBookmark(id); err != nil {
			t.Fatalf("ToggleBookmark(%s) error = %v", id, err)
		}
	}

	ids, err := db.ListBookmarks()
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if want := []string{"c3", "c1", "c2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("got %v, want %v", ids, want)
	}

	count, err := db.BookmarkCount()
	if err != nil {
		t.Fatalf("BookmarkCount() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

// Bookmarks and view mode must survive a close/reopen cycle.
func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.ToggleBookmark("c1"); err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if _, err := db.ToggleBookmark("c2"); err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if err := db.SetViewMode(ViewModeGrid); err != nil {
		t.Fatalf("SetViewMode() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	ids, err := reopened.ListBookmarks()
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if want := []string{"c1", "c2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("bookmarks after reopen = %v, want %v", ids, want)
	}

	mode, err := reopened.ViewMode()
	if err != nil {
		t.Fatalf("ViewMode() error = %v", err)
	}
	if mode != ViewModeGrid {
		t.Errorf("view mode after reopen = %s, want grid", mode)
	}
}

func TestViewModeDefaults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	mode, err := db.ViewMode()
	if err != nil {
		t.Fatalf("ViewMode() error = %v", err)
	}
	if mode != ViewModeTable {
		t.Errorf("default view mode = %s, want table", mode)
	}

	if err := db.SetViewMode("sideways"); err == nil {
		t.Error("SetViewMode accepted an invalid mode")
	}
}
