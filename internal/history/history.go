// Package history keeps an append-only audit log of deployments and other
// state-changing events.
//
// The log is newline-delimited JSON, one entry per line, never truncated or
// rewritten. Auditing is best-effort: a failure to append is logged and
// swallowed so it can never abort the operation being audited.
package history

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mcpdeck/mcpdeck/internal/paths"
)

// Event kinds recorded in the log.
const (
	EventDeploy    = "deploy"
	EventSelection = "selection_changed"
	EventLaunch    = "launch"
	EventBatch     = "batch_run"
)

// Entry is one audit record. Timestamp has second precision.
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Event     string         `json:"event"`
	Details   map[string]any `json:"details"`
}

// Time parses the entry timestamp. Malformed timestamps yield the zero time.
func (e Entry) Time() time.Time {
	t, _ := time.Parse(time.RFC3339, e.Timestamp)
	return t
}

// Log appends to and reads one history file.
type Log struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// New returns a log writing to path. The file and its directory are created
// on first append.
func New(path string, logger *slog.Logger) *Log {
	return &Log{path: path, logger: logger, now: time.Now}
}

// Append records one event. Failures are logged, not returned: the audit
// trail must never block the operation it describes.
func (l *Log) Append(event string, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}
	entry := Entry{
		Timestamp: l.now().Truncate(time.Second).Format(time.RFC3339),
		Event:     event,
		Details:   details,
	}

	if err := l.append(entry); err != nil {
		l.logger.Warn("history append failed", "event", event, "error", err)
	}
}

func (l *Log) append(entry Entry) error {
	if err := paths.EnsureDir(filepath.Dir(l.path), paths.DefaultDirPerm); err != nil {
		return err
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "encoding history entry")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "opening history log")
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return errors.Wrap(err, "appending history entry")
	}
	return nil
}

// Read returns all entries in file order. Malformed lines are skipped with
// a warning so one corrupt record never hides the rest of the log. A missing
// log file reads as empty.
func (l *Log) Read() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "opening history log")
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			l.logger.Warn("skipping malformed history line", "line", lineNo, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading history log")
	}
	return entries, nil
}

// Tail returns the last n entries (all of them when n exceeds the log).
func (l *Log) Tail(n int) ([]Entry, error) {
	entries, err := l.Read()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
