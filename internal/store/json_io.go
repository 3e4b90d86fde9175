package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"wordbot/internal/domain"
)

// encodeWords renders words as an indented JSON array. Non-ASCII text is
// written as UTF-8 and HTML characters are left alone, so the file stays
// readable by hand.
func encodeWords(words []string) ([]byte, error) {
	if words == nil {
		words = []string{}
	}
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(words); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeWords parses a persisted word list and checks it still satisfies the
// list invariant: every entry normalized, non-empty and unique.
func decodeWords(b []byte) ([]string, error) {
	var words []string
	if err := json.Unmarshal(b, &words); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(words))
	for i, w := range words {
		if w == "" || domain.Normalize(w) != w {
			return nil, fmt.Errorf("entry %d %q is not a normalized word", i, w)
		}
		if _, dup := seen[w]; dup {
			return nil, fmt.Errorf("entry %d %q is a duplicate", i, w)
		}
		seen[w] = struct{}{}
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}
