package store_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordbot/internal/domain"
	"wordbot/internal/store"
)

func newStore(t *testing.T) (*store.WordFileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "added_words.json")
	return store.NewWordFileStore(path), path
}

func readPersisted(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var words []string
	require.NoError(t, json.Unmarshal(b, &words))
	return words
}

func TestWordStore_FreshStoreIsEmpty(t *testing.T) {
	s, path := newStore(t)

	words, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.NotNil(t, words)

	b, err := s.Export()
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Len(t, b, 0)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// First access materializes the file and its directory.
	assert.Equal(t, []string{}, readPersisted(t, path))
}

func TestWordStore_DuplicateAddIsIdempotent(t *testing.T) {
	s, path := newStore(t)

	got, err := s.Add("cat")
	require.NoError(t, err)
	assert.Equal(t, domain.Added, got)

	got, err = s.Add("cat")
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyExists, got)

	assert.Equal(t, []string{"cat"}, readPersisted(t, path))
}

func TestWordStore_NormalizesCaseAndWhitespace(t *testing.T) {
	s, path := newStore(t)

	got, err := s.Add("  Apple ")
	require.NoError(t, err)
	assert.Equal(t, domain.Added, got)

	got, err = s.Add("apple")
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyExists, got)

	got, err = s.Add("APPLE")
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyExists, got)

	assert.Equal(t, []string{"apple"}, readPersisted(t, path))

	removed, err := s.Remove(" ApPlE")
	require.NoError(t, err)
	assert.Equal(t, domain.Removed, removed)
}

func TestWordStore_RemoveUndoesAdd(t *testing.T) {
	s, _ := newStore(t)
	for _, w := range []string{"one", "two", "three"} {
		_, err := s.Add(w)
		require.NoError(t, err)
	}
	before, err := s.List()
	require.NoError(t, err)

	added, err := s.Add("four")
	require.NoError(t, err)
	require.Equal(t, domain.Added, added)

	removed, err := s.Remove("four")
	require.NoError(t, err)
	assert.Equal(t, domain.Removed, removed)

	after, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWordStore_RemoveKeepsOrderOfOthers(t *testing.T) {
	s, path := newStore(t)
	for _, w := range []string{"a", "b", "c", "d"} {
		_, err := s.Add(w)
		require.NoError(t, err)
	}

	removed, err := s.Remove("b")
	require.NoError(t, err)
	assert.Equal(t, domain.Removed, removed)
	assert.Equal(t, []string{"a", "c", "d"}, readPersisted(t, path))
}

func TestWordStore_RemoveMissingDoesNotWrite(t *testing.T) {
	s, path := newStore(t)
	_, err := s.Add("cat")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)

	got, err := s.Remove("dog")
	require.NoError(t, err)
	assert.Equal(t, domain.NotFound, got)

	after, err := os.Stat(path)
	require.NoError(t, err)
	// A rewrite would have replaced the inode via rename.
	assert.True(t, os.SameFile(info, after))
}

func TestWordStore_AlreadyExistsDoesNotWrite(t *testing.T) {
	s, path := newStore(t)
	_, err := s.Add("cat")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)

	got, err := s.Add("Cat")
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyExists, got)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, os.SameFile(info, after))
}

func TestWordStore_EmptyWordIsInvalid(t *testing.T) {
	s, _ := newStore(t)

	for _, w := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(w)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "Add(%q)", w)

		_, err = s.Remove(w)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "Remove(%q)", w)
	}

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWordStore_ExportMatchesList(t *testing.T) {
	s, _ := newStore(t)
	for _, w := range []string{"banana", "apple", "слово", "ice cream"} {
		_, err := s.Add(w)
		require.NoError(t, err)
	}

	words, err := s.List()
	require.NoError(t, err)
	b, err := s.Export()
	require.NoError(t, err)

	assert.Equal(t, words, strings.Split(string(b), "\n"))
	assert.Equal(t, "banana\napple\nслово\nice cream", string(b))
}

func TestWordStore_ListReturnsCopy(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Add("cat")
	require.NoError(t, err)

	words, err := s.List()
	require.NoError(t, err)
	words[0] = "mutated"

	again, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, again)
}

func TestWordStore_SurvivesRestart(t *testing.T) {
	s, path := newStore(t)
	got, err := s.Add("durable")
	require.NoError(t, err)
	require.Equal(t, domain.Added, got)

	reopened := store.NewWordFileStore(path)
	words, err := reopened.List()
	require.NoError(t, err)
	assert.Contains(t, words, "durable")
}

func TestWordStore_FileFormat(t *testing.T) {
	s, path := newStore(t)
	for _, w := range []string{"apple", "<b>", "слово"} {
		_, err := s.Add(w)
		require.NoError(t, err)
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"слово"`)
	assert.Contains(t, string(b), `"<b>"`)
	assert.Equal(t, []string{"apple", "<b>", "слово"}, readPersisted(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWordStore_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["apple","banana"]`), 0o600))

	s := store.NewWordFileStore(path)
	words, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana"}, words)

	got, err := s.Add("Banana")
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyExists, got)
}

// Whatever Add accepts must come back from the file it wrote: the stored
// form is re-read with the same invariant check as a hand-edited file.
func TestWordStore_UnicodeEdgeCasesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "combining mark", in: "Cafe\u0301", want: "caf\u00e9"},
		{name: "supplementary letter with combining mark", in: "\U00010041\u0301", want: "\u00e1"},
		{name: "supplementary plane emoji", in: "\U0001F600", want: "\U0001F600"},
		{name: "deseret capital", in: "\U00010400", want: "\U00010428"},
		{name: "invalid utf-8", in: "caf\xff", want: "caf\ufffd"},
		{name: "lone continuation byte", in: "\x80", want: "\ufffd"},
		{name: "final sigma", in: "\u039f\u0394\u039f\u03a3", want: "\u03bf\u03b4\u03bf\u03c2"},
		{name: "dotted capital i", in: "\u0130stanbul", want: "i\u0307stanbul"},
		{name: "html characters", in: "<A&B>", want: "<a&b>"},
		{name: "line separator", in: "a\u2028b", want: "a\u2028b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newStore(t)

			got, err := s.Add(tt.in)
			require.NoError(t, err)
			assert.Equal(t, domain.Added, got)

			words, err := s.List()
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, words)
			assert.Equal(t, words, readPersisted(t, path))

			again, err := s.Add(tt.in)
			require.NoError(t, err)
			assert.Equal(t, domain.AlreadyExists, again)

			reopened := store.NewWordFileStore(path)
			n, err := reopened.Count()
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			removed, err := reopened.Remove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, domain.Removed, removed)
		})
	}
}

func TestWordStore_InvalidUTF8IsOneWord(t *testing.T) {
	s, _ := newStore(t)

	first, err := s.Add("caf\xff")
	require.NoError(t, err)
	assert.Equal(t, domain.Added, first)

	second, err := s.Add("caf\xfe")
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyExists, second)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWordStore_NoTempFilesLeftBehind(t *testing.T) {
	s, path := newStore(t)
	for i := 0; i < 5; i++ {
		_, err := s.Add(fmt.Sprintf("w%d", i))
		require.NoError(t, err)
	}
	_, err := s.Remove("w2")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

// The store serializes load-mutate-save, so concurrent adds of distinct
// words never drop an update. An unsynchronized read-modify-write of the
// same file would lose some of them.
func TestWordStore_ConcurrentAddsAreNotLost(t *testing.T) {
	s, path := newStore(t)
	const n = 64

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := s.Add(fmt.Sprintf("word-%02d", i))
			if err != nil {
				errs <- err
				return
			}
			if got != domain.Added {
				errs <- fmt.Errorf("word-%02d: got %v", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	words := readPersisted(t, path)
	require.Len(t, words, n)
	seen := make(map[string]bool, n)
	for _, w := range words {
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
	}
	for i := 0; i < n; i++ {
		assert.True(t, seen[fmt.Sprintf("word-%02d", i)])
	}
}

func TestWordStore_ConcurrentReadersSeeWholeLists(t *testing.T) {
	s, _ := newStore(t)
	const n = 32

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, err := s.Add(fmt.Sprintf("w%02d", i))
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, err := s.List()
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestWordStore_CorruptFileIsReportedNotReset(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{not json"},
		{name: "object instead of array", content: `{"words":["a"]}`},
		{name: "empty file", content: ""},
		{name: "uppercase entry", content: `["Apple"]`},
		{name: "duplicate entry", content: `["apple","apple"]`},
		{name: "empty entry", content: `["apple",""]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "words.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			s := store.NewWordFileStore(path)

			_, err := s.List()
			assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

			_, err = s.Add("cat")
			assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

			_, err = s.Count()
			assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

			b, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(b))
		})
	}
}

func TestWordStore_NullFileIsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o600))

	n, err := store.NewWordFileStore(path).Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWordStore_UnreadablePath(t *testing.T) {
	// A directory where the file should be cannot be read as a list.
	path := t.TempDir()
	s := store.NewWordFileStore(path)

	_, err := s.List()
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	_, err = s.Export()
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestWordStore_UnwritableDirectory(t *testing.T) {
	// A regular file in place of the parent directory blocks creation.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	s := store.NewWordFileStore(filepath.Join(blocker, "words.json"))

	_, err := s.Add("cat")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = s.Count()
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestWordStore_Path(t *testing.T) {
	s, path := newStore(t)
	assert.Equal(t, path, s.Path())
}
