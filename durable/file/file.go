// Package file implements the durable tier as one file per key under a base
// directory: the host-platform storage stand-in when no Redis is around.
//
// Keys map to filenames with url.PathEscape, which is reversible, so
// GetAllKeys can recover the original keys from a directory listing. Writes
// go through a temp file and rename for atomicity.
package file

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/GovThePPL/candid-sub001/durable"
)

const tmpPrefix = ".cachetmp-"

type Store struct {
	dir string
}

var _ durable.Store = (*Store)(nil)

// New creates (if needed) the base directory and returns a store rooted
// there. The directory is private to the owning user.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("file durable store: dir required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: abs}, nil
}

func (s *Store) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) SetItem(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, tmpPrefix+"*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_, werr := tmp.Write(value)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return werr
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (s *Store) RemoveItem(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) MultiRemove(ctx context.Context, keys []string) error {
	var errs []error
	for _, k := range keys {
		if err := s.RemoveItem(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) GetAllKeys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), tmpPrefix) {
			continue
		}
		key, err := url.PathUnescape(e.Name())
		if err != nil {
			continue // foreign file, not one of ours
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *Store) Close(context.Context) error { return nil }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}
