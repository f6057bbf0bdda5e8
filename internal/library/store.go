package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sant0-9/promptsmith/internal/prompt"
)

// ErrNotFound is returned when no prompt has the requested name.
var ErrNotFound = errors.New("not found")

// Entry is a named prompt kept in the library.
type Entry struct {
	ID        string
	Name      string
	Document  prompt.Document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is an Entry without its sections, as returned by List.
type Summary struct {
	ID        string
	Name      string
	Sections  int
	UpdatedAt time.Time
}

// Store persists prompts in SQLite. Every populated slot is stored verbatim,
// so a Save/Get round trip is exact.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an open library database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open opens the database at path and returns a Store over it.
func Open(path string) (*Store, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save creates or replaces the prompt called name.
func (s *Store) Save(ctx context.Context, name string, doc prompt.Document) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("prompt name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC()
	entry := &Entry{Name: name, Document: doc, UpdatedAt: now}

	var created string
	err = tx.QueryRowContext(ctx,
		`SELECT id, created_at FROM prompts WHERE name = ?`, name,
	).Scan(&entry.ID, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		entry.ID = uuid.New().String()
		entry.CreatedAt = now
		_, err = tx.ExecContext(ctx,
			`INSERT INTO prompts (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			entry.ID, name, formatTime(now), formatTime(now))
		if err != nil {
			return nil, fmt.Errorf("inserting prompt: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("looking up prompt: %w", err)
	default:
		if entry.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE prompts SET updated_at = ? WHERE id = ?`, formatTime(now), entry.ID)
		if err != nil {
			return nil, fmt.Errorf("updating prompt: %w", err)
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM prompt_sections WHERE prompt_id = ?`, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("clearing sections: %w", err)
		}
	}

	for _, sec := range doc.Sections() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO prompt_sections (prompt_id, kind, body) VALUES (?, ?, ?)`,
			entry.ID, sec.Kind.Key(), sec.Text)
		if err != nil {
			return nil, fmt.Errorf("inserting section %s: %w", sec.Kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing prompt: %w", err)
	}
	return entry, nil
}

// Get loads the prompt called name.
func (s *Store) Get(ctx context.Context, name string) (*Entry, error) {
	var (
		e                Entry
		created, updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM prompts WHERE name = ?`, name,
	).Scan(&e.ID, &e.Name, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("prompt %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}
	if e.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, body FROM prompt_sections WHERE prompt_id = ?`, e.ID)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, body string
		if err := rows.Scan(&key, &body); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		kind, err := prompt.ParseKind(key)
		if err != nil {
			return nil, err
		}
		e.Document.Set(kind, body)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns every prompt, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.updated_at, COUNT(ps.kind)
		FROM prompts p
		LEFT JOIN prompt_sections ps ON ps.prompt_id = p.id
		GROUP BY p.id
		ORDER BY p.updated_at DESC, p.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			updated string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &updated, &sum.Sections); err != nil {
			return nil, fmt.Errorf("scanning prompt: %w", err)
		}
		if sum.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes the prompt called name and its sections.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM prompts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
