package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"wordbot/internal/domain"
)

const wordsFileMode = 0o600

// persist is the only way the store writes its file.
var persist = writeFile

// WordFileStore persists the word list as a single JSON file.
//
// Add and Remove hold the write lock across load, mutate and save, so two
// concurrent mutations serialize instead of losing one update. List, Export
// and Count share the read lock.
type WordFileStore struct {
	path string
	mu   sync.RWMutex
}

// NewWordFileStore returns a WordFileStore backed by the file at path. The
// file and its directory are created on first access.
func NewWordFileStore(path string) *WordFileStore {
	return &WordFileStore{path: path}
}

// Path returns the backing file path.
func (s *WordFileStore) Path() string { return s.path }

// Add appends word unless it is already present.
func (s *WordFileStore) Add(word string) (domain.AddOutcome, error) {
	w := domain.Normalize(word)
	if w == "" {
		return 0, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words, _, err := s.read()
	if err != nil {
		return 0, err
	}
	if slices.Contains(words, w) {
		return domain.AlreadyExists, nil
	}
	if err := s.save(append(words, w)); err != nil {
		return 0, err
	}
	return domain.Added, nil
}

// Remove deletes word if present.
func (s *WordFileStore) Remove(word string) (domain.RemoveOutcome, error) {
	w := domain.Normalize(word)
	if w == "" {
		return 0, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words, exists, err := s.read()
	if err != nil {
		return 0, err
	}
	i := slices.Index(words, w)
	if i < 0 {
		if !exists {
			if err := s.save(nil); err != nil {
				return 0, err
			}
		}
		return domain.NotFound, nil
	}
	if err := s.save(slices.Delete(words, i, i+1)); err != nil {
		return 0, err
	}
	return domain.Removed, nil
}

// List returns a copy of the words in insertion order.
func (s *WordFileStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load()
}

// Export returns the words joined by newlines. An empty list exports as an
// empty, non-nil byte slice.
func (s *WordFileStore) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words, err := s.load()
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(words, "\n")), nil
}

// Count returns the number of words.
func (s *WordFileStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// load reads the full list from disk, materializing an empty list when the
// file does not exist yet. Callers must hold s.mu.
func (s *WordFileStore) load() ([]string, error) {
	words, exists, err := s.read()
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.save(nil); err != nil {
			return nil, err
		}
	}
	return words, nil
}

// read reads the full list from disk without creating anything. A missing
// file reads as an empty list with exists false, so a mutation that is about
// to save writes the file once. Callers must hold s.mu.
func (s *WordFileStore) read() (words []string, exists bool, err error) {
	b, ok, err := readFile(s.path)
	if err != nil {
		return nil, false, s.storageErr("read", err)
	}
	if !ok {
		return []string{}, false, nil
	}
	words, err = decodeWords(b)
	if err != nil {
		return nil, true, s.storageErr("parse", err)
	}
	return words, true, nil
}

// save rewrites the whole file. Callers must hold s.mu.
func (s *WordFileStore) save(words []string) error {
	b, err := encodeWords(words)
	if err != nil {
		return s.storageErr("encode", err)
	}
	if err := persist(s.path, b, wordsFileMode); err != nil {
		return s.storageErr("write", err)
	}
	return nil
}

func (s *WordFileStore) storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", domain.ErrStorageUnavailable, op, s.path, err)
}

// Compile-time assertion that WordFileStore implements domain.WordStore.
var _ domain.WordStore = (*WordFileStore)(nil)
