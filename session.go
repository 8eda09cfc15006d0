package markbook

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/markbook/blobstore"
	"github.com/hupe1980/markbook/command"
)

// Session owns one Book and the store it is persisted to, and drives the
// transcription loop: incremental queries re-sort the book, committed
// lines record marks or execute commands, and every mutation is saved.
//
// A Session serializes access to its Book with an internal mutex, so a
// host may call it from UI callbacks or goroutines without extra locking.
type Session struct {
	mu    sync.Mutex
	book  *Book
	store blobstore.Store
	opts  options
}

// Result is the outcome of one committed input line.
type Result struct {
	// Kind is the command the line was classified as.
	Kind command.Kind
	// Output is the text to show: the export view for KindExport, the
	// refreshed display view otherwise.
	Output string
}

// NewSession creates a Session with an empty Book on top of store.
func NewSession(store blobstore.Store, optFns ...Option) *Session {
	opts := options{
		codec:       nil, // codec.Default
		compression: CompressionNone,
		key:         DefaultKey,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Session{
		book:  New(),
		store: store,
		opts:  opts,
	}
}

// Load replaces the session's book with the snapshot saved under the
// session key. A missing snapshot is not an error: the session keeps its
// fresh empty book and returns blobstore.ErrNotFound so the host can tell
// a first run from a restored one.
func (s *Session) Load(ctx context.Context) error {
	start := time.Now()

	data, err := s.store.Get(ctx, s.opts.key)
	if errors.Is(err, blobstore.ErrNotFound) {
		// First run, nothing to restore. Not counted as a load so the
		// metrics only reflect actual restore attempts.
		return err
	}
	if err != nil {
		s.opts.metrics.RecordLoad(time.Since(start), err)
		s.opts.logger.LogLoad(ctx, s.opts.key, 0, err)
		return err
	}

	book, err := DecodeSnapshot(data)
	s.opts.metrics.RecordLoad(time.Since(start), err)
	if err != nil {
		s.opts.logger.LogLoad(ctx, s.opts.key, 0, err)
		return err
	}

	s.mu.Lock()
	s.book = book
	s.mu.Unlock()

	s.opts.logger.LogLoad(ctx, s.opts.key, book.Len(), nil)
	return nil
}

// InitStudents replaces the book with a fresh one holding one student per
// line of text, blank lines included. Tabs inside a name are folded to
// spaces so names never collide with the tab-separated export. The new
// book is saved.
func (s *Session) InitStudents(ctx context.Context, text string) error {
	book := New()
	if text != "" {
		// Every newline terminates a line; a trailing one opens no extra
		// line, interior blanks become empty-named records.
		for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			book.AddStudent(strings.ReplaceAll(line, "\t", " "))
		}
	}

	s.mu.Lock()
	s.book = book
	s.mu.Unlock()

	return s.save(ctx)
}

// Query re-sorts the book by similarity to q. An empty query is a no-op,
// so backspacing to an empty input keeps the last ordering. This is the
// per-keystroke path; nothing is persisted.
func (s *Session) Query(ctx context.Context, q string) {
	if q == "" {
		return
	}

	start := time.Now()
	s.mu.Lock()
	s.book.SortWith(q)
	count := s.book.Len()
	s.mu.Unlock()

	s.opts.metrics.RecordSort(count, time.Since(start))
	s.opts.logger.LogSort(ctx, q, count)
}

// Exec parses and executes one committed input line.
//
//   - a query line is a no-op (no marks were entered)
//   - a marks line records the marks against the top record and saves
//   - :export returns the tab-separated export text
//   - :clear discards all records and saves
//
// On any error the book is left unchanged.
func (s *Session) Exec(ctx context.Context, line string) (Result, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return Result{}, err
	}

	switch cmd.Kind {
	case command.KindQuery:
		// Commit without marks: keep current state, just refresh the view.
		return Result{Kind: cmd.Kind, Output: s.View()}, nil

	case command.KindAssignMarks:
		start := time.Now()
		s.mu.Lock()
		err := s.book.SetMarksAtTop(cmd.Marks)
		top, _ := s.book.Top()
		s.mu.Unlock()

		s.opts.metrics.RecordMarks(time.Since(start), err)
		if err != nil {
			s.opts.logger.LogRecordMarks(ctx, "", NullRecordID, err)
			return Result{}, err
		}
		s.opts.logger.LogRecordMarks(ctx, top.Student, top.ID, nil)

		if err := s.save(ctx); err != nil {
			return Result{}, err
		}
		return Result{Kind: cmd.Kind, Output: s.View()}, nil

	case command.KindExport:
		s.mu.Lock()
		out := s.book.ExportString()
		s.mu.Unlock()
		return Result{Kind: cmd.Kind, Output: out}, nil

	case command.KindClear:
		s.mu.Lock()
		dropped := s.book.Len()
		s.book.Clear()
		s.mu.Unlock()

		s.opts.logger.LogClear(ctx, dropped)
		if err := s.save(ctx); err != nil {
			return Result{}, err
		}
		return Result{Kind: cmd.Kind, Output: ""}, nil

	default:
		// Parse is total over the closed command set; unreachable.
		return Result{}, &command.UnknownCommandError{Input: line}
	}
}

// View returns the current fixed-width display text.
func (s *Session) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.String()
}

// Export returns the current tab-separated export text.
func (s *Session) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.ExportString()
}

// Len returns the number of records in the session's book.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Len()
}

// Records returns a copy of the book's records in current order.
func (s *Session) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Records()
}

func (s *Session) save(ctx context.Context) error {
	start := time.Now()

	s.mu.Lock()
	data, err := EncodeSnapshot(s.book, s.opts.codec, s.opts.compression)
	s.mu.Unlock()
	if err != nil {
		s.opts.metrics.RecordSave(0, time.Since(start), err)
		s.opts.logger.LogSave(ctx, s.opts.key, 0, err)
		return err
	}

	err = s.store.Put(ctx, s.opts.key, data)
	s.opts.metrics.RecordSave(len(data), time.Since(start), err)
	s.opts.logger.LogSave(ctx, s.opts.key, len(data), err)
	return err
}
