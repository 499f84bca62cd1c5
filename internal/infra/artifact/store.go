package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ticketgate/internal/infra"
)

// Store keeps generated QR images on disk under a private directory that is
// never served statically. Files are addressed only by the deterministic
// name derived from the booking identifier.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create artifact directory", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Save(name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write artifact", err)
	}
	return nil
}

func (s *Store) Open(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "artifact not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read artifact", err)
	}
	return data, nil
}

// resolve rejects names that would escape the store directory.
func (s *Store) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", infra.WrapRepoErr(infra.KindNotFound, "invalid artifact name", nil)
	}
	return filepath.Join(s.dir, name), nil
}

func (s *Store) Dir() string {
	return s.dir
}
