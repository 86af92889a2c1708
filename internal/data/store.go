package data

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

//go:embed schema.sql
var schemaFS embed.FS

func appDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "taahud")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// Store owns the persisted document. It reads the document once on
// open and rewrites it wholesale after every accepted mutation; there
// is exactly one logical writer per session, last write wins.
type Store struct {
	db  *sql.DB
	doc Document
}

// Open opens the store at the default data directory.
func Open() (*Store, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(dir, "taahud.db"))
}

// OpenAt opens the store at an explicit database path.
func OpenAt(path string) (*Store, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

func (s *Store) load() error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, DocumentKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.doc = DefaultDocument()
		return nil
	case err != nil:
		return err
	}

	doc, ok := ParseDocument([]byte(raw))
	if !ok {
		fmt.Fprintln(os.Stderr, "warning: stored data was corrupted and has been reset")
	}
	s.doc = doc
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Document returns a snapshot of the current state. Mutating the copy
// has no effect on the store.
func (s *Store) Document() Document { return s.doc.Clone() }

// save rewrites the whole document under the fixed key. On failure the
// in-memory snapshot is left at the previous accepted state and the
// error is surfaced so the caller can warn the user; there is no
// retry.
func (s *Store) save(doc Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO documents(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, DocumentKey, string(b))
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	s.doc = doc
	return nil
}

// mutate applies fn to a fresh snapshot and persists the result.
// The live snapshot only advances when the write succeeds.
func (s *Store) mutate(fn func(*Document)) error {
	doc := s.doc.Clone()
	fn(&doc)
	return s.save(doc)
}

var rangeSeq atomic.Int64

// newRangeID keeps the original millisecond-timestamp shape but stays
// unique when several ranges are created within the same tick.
func newRangeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) +
		"-" + strconv.FormatInt(rangeSeq.Add(1), 10)
}

// AddRange appends a validated range at the end of the display order.
func (s *Store) AddRange(start, end int) (review.Range, error) {
	var r review.Range
	err := s.mutate(func(doc *Document) {
		r = review.Range{
			ID:    newRangeID(),
			Start: start,
			End:   end,
			Order: len(doc.Ranges),
		}
		doc.Ranges = append(doc.Ranges, r)
	})
	return r, err
}

// UpdateRange replaces the bounds of an existing range.
func (s *Store) UpdateRange(id string, start, end int) error {
	found := false
	err := s.mutate(func(doc *Document) {
		for i := range doc.Ranges {
			if doc.Ranges[i].ID == id {
				doc.Ranges[i].Start = start
				doc.Ranges[i].End = end
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("range %s not found", id)
	}
	return nil
}

// DeleteRange removes a range from the set.
func (s *Store) DeleteRange(id string) error {
	found := false
	err := s.mutate(func(doc *Document) {
		kept := doc.Ranges[:0]
		for _, r := range doc.Ranges {
			if r.ID == id {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		doc.Ranges = kept
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("range %s not found", id)
	}
	return nil
}

// MoveRange moves a range to a new position in the display order and
// renumbers the order field of every range.
func (s *Store) MoveRange(id string, pos int) error {
	found := false
	err := s.mutate(func(doc *Document) {
		from := -1
		for i, r := range doc.Ranges {
			if r.ID == id {
				from = i
				break
			}
		}
		if from == -1 {
			return
		}
		found = true
		if pos < 0 {
			pos = 0
		}
		if pos >= len(doc.Ranges) {
			pos = len(doc.Ranges) - 1
		}
		moved := doc.Ranges[from]
		doc.Ranges = append(doc.Ranges[:from], doc.Ranges[from+1:]...)
		doc.Ranges = append(doc.Ranges[:pos], append([]review.Range{moved}, doc.Ranges[pos:]...)...)
		for i := range doc.Ranges {
			doc.Ranges[i].Order = i
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("range %s not found", id)
	}
	return nil
}

// UpdateSettings applies a partial edit to the stored settings.
func (s *Store) UpdateSettings(fn func(*Settings)) error {
	return s.mutate(func(doc *Document) {
		fn(&doc.Settings)
	})
}

// SetTheme switches between "dark" and "light".
func (s *Store) SetTheme(theme string) error {
	return s.mutate(func(doc *Document) {
		if theme == "light" {
			doc.Theme = "light"
		} else {
			doc.Theme = "dark"
		}
	})
}

// MarkComplete records a date as done.
func (s *Store) MarkComplete(date string) error {
	return s.mutate(func(doc *Document) {
		doc.CompletionHistory.MarkComplete(date)
	})
}

// MarkCarriedOver defers a date's assignment to the next day.
func (s *Store) MarkCarriedOver(date string) error {
	return s.mutate(func(doc *Document) {
		doc.CompletionHistory.MarkCarriedOver(date)
	})
}

// IgnoreMissed records an explicit skip for a date.
func (s *Store) IgnoreMissed(date string) error {
	return s.mutate(func(doc *Document) {
		doc.CompletionHistory.IgnoreMissed(date)
	})
}

// UpdateCycle merges changes into the current cycle record.
func (s *Store) UpdateCycle(fn func(*Cycle)) error {
	return s.mutate(func(doc *Document) {
		fn(&doc.CurrentCycle)
	})
}

// RestartCycle pins a new cycle starting on the given date and bumps
// the cycle number.
func (s *Store) RestartCycle(startDate string) error {
	return s.mutate(func(doc *Document) {
		doc.CurrentCycle.StartDate = startDate
		doc.CurrentCycle.CycleNumber++
	})
}
