// Package logfile writes log output to one file per day and reads those
// files back.
//
// Files are named <appName>_<YYYY-MM-DD>.log and live in a single directory.
package logfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned when no log file exists for the requested day.
var ErrNotFound = errors.New("log file not found")

const dateLayout = "2006-01-02"

// FileName returns the log file name for the given day. Parts are not
// checked against the calendar.
func FileName(appName string, year, month, day int) string {
	return fmt.Sprintf("%s_%04d-%02d-%02d.log", appName, year, month, day)
}

// DailyWriter is an io.Writer that switches to a new file when the local
// date changes. It is safe for concurrent use.
type DailyWriter struct {
	dir     string
	appName string
	now     func() time.Time

	mu      sync.Mutex
	current string
	file    *os.File
}

// Option configures a DailyWriter.
type Option func(*DailyWriter)

// WithClock overrides the time source used to pick the file.
func WithClock(now func() time.Time) Option {
	return func(w *DailyWriter) {
		w.now = now
	}
}

// NewDailyWriter creates the log directory if needed and opens today's file.
func NewDailyWriter(dir, appName string, opts ...Option) (*DailyWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	w := &DailyWriter{
		dir:     dir,
		appName: appName,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.rotate(w.now().Format(dateLayout)); err != nil {
		return nil, err
	}
	return w, nil
}

// Write appends p to the file of the current day.
func (w *DailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if date := w.now().Format(dateLayout); date != w.current || w.file == nil {
		if err := w.rotate(date); err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

// Path returns the path of the file currently written to.
func (w *DailyWriter) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return ""
	}
	return w.file.Name()
}

// Close closes the current file.
func (w *DailyWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// rotate must be called with mu held.
func (w *DailyWriter) rotate(date string) error {
	if w.file != nil {
		_ = w.file.Close()
		w.file = nil
	}

	name := fmt.Sprintf("%s_%s.log", w.appName, date)
	f, err := os.OpenFile(filepath.Join(w.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	w.file = f
	w.current = date
	return nil
}

// Store reads day files back from the log directory.
type Store struct {
	dir     string
	appName string
}

// NewStore creates a Store for the given directory and application name.
func NewStore(dir, appName string) *Store {
	return &Store{dir: dir, appName: appName}
}

// Path returns the full path of the file for the given day.
func (s *Store) Path(year, month, day int) string {
	return filepath.Join(s.dir, FileName(s.appName, year, month, day))
}

// Read returns the content of the file for the given day. It returns
// ErrNotFound when the file does not exist.
func (s *Store) Read(year, month, day int) ([]byte, error) {
	path := s.Path(year, month, day)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return data, nil
}
