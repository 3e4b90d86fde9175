package interfaces

import domaintypes "wordbot/internal/domain/types"

// WordStore owns the persisted word list.
//
// Add and Remove normalize their argument before comparing or storing it.
// Every call reads the backing file in full; Add and Remove rewrite it in
// full when they change the list.
type WordStore interface {
	Add(word string) (domaintypes.AddOutcome, error)
	Remove(word string) (domaintypes.RemoveOutcome, error)
	List() ([]string, error)
	Export() ([]byte, error)
	Count() (int, error)
}
