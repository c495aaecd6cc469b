package store

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/park285/chess-notation-recorder/internal/ledger"
)

// FileStore treats names as filesystem paths.
type FileStore struct{}

func NewFileStore() *FileStore { return &FileStore{} }

func (s *FileStore) Save(ctx context.Context, name string, l *ledger.Ledger) error {
	path, err := checkName(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &ledger.IOError{Op: "open", Name: path, Err: err}
	}
	if err := l.Serialize(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &ledger.IOError{Op: "close", Name: path, Err: err}
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, name string, l *ledger.Ledger) error {
	l.Reset()
	path, err := checkName(name)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.ErrNotFound
	}
	if err != nil {
		return &ledger.IOError{Op: "open", Name: path, Err: err}
	}
	defer f.Close()
	return l.Deserialize(f)
}

func (s *FileStore) Close() error { return nil }
