package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportLogLifecycle(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	id, err := s.CreateImportLog("Data NIB Januari 2024.xlsx", "abc123", 2048, "operational", 2024)
	if err != nil {
		t.Fatalf("CreateImportLog: %v", err)
	}
	if id == 0 {
		t.Fatal("id is zero")
	}

	if err := s.CompleteImportLog(id, []string{"Januari"}, 15, "done", ""); err != nil {
		t.Fatalf("CompleteImportLog: %v", err)
	}

	logs, err := s.RecentImports(10)
	if err != nil {
		t.Fatalf("RecentImports: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}

	log := logs[0]
	if log.Filename != "Data NIB Januari 2024.xlsx" || log.Status != "done" {
		t.Fatalf("log = %+v", log)
	}
	if len(log.MonthsLoaded) != 1 || log.MonthsLoaded[0] != "Januari" {
		t.Fatalf("months = %v", log.MonthsLoaded)
	}
	if log.RecordCount != 15 || log.Year != 2024 {
		t.Fatalf("count/year = %d/%d", log.RecordCount, log.Year)
	}
	if log.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}
}

func TestRecentImportsNewestFirst(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	for _, name := range []string{"a.xlsx", "b.xlsx", "c.xlsx"} {
		if _, err := s.CreateImportLog(name, "h", 1, "operational", 2024); err != nil {
			t.Fatalf("CreateImportLog(%s): %v", name, err)
		}
	}

	logs, err := s.RecentImports(2)
	if err != nil {
		t.Fatalf("RecentImports: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].Filename != "c.xlsx" {
		t.Fatalf("first log = %s, want c.xlsx", logs[0].Filename)
	}
}
