// Package store provides file-based persistence for the word list.
//
// WordFileStore keeps the list as one JSON array of normalized words. Each
// call reads the whole file; each change rewrites the whole file through a
// temp file and a rename, so readers never see a half-written list. All
// methods are concurrency-safe via internal locking.
//
// Any failure to read, parse or write the file is reported as
// domain.ErrStorageUnavailable. A file that cannot be parsed is left
// untouched rather than reset.
package store
