package sourcefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"fontsources/internal/catalog"
)

const lockRetryDelay = 100 * time.Millisecond

// ErrLocked is returned when another process holds the output lock and the
// context ends before it is released.
var ErrLocked = errors.New("output file is locked by another process")

// LockPath returns the advisory lock file used for path.
func LockPath(path string) string {
	return path + ".lock"
}

// Write encodes doc and replaces path atomically. The parent directory is
// created if needed. Concurrent writers serialize on an advisory lock next to
// the output file.
func Write(ctx context.Context, path string, doc *catalog.SourceDocument) error {
	if path == "" {
		return errors.New("output path is required")
	}
	if doc == nil {
		return errors.New("document is required")
	}

	data, err := catalog.Encode(doc)
	if err != nil {
		return fmt.Errorf("encode source document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrLocked, ctxErr)
		}
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Read loads a previously written source file.
func Read(path string) (*catalog.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	var doc catalog.SourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode source file %s: %w", path, err)
	}
	if doc.Fonts == nil {
		doc.Fonts = make(map[string]catalog.FontEntry)
	}
	return &doc, nil
}
