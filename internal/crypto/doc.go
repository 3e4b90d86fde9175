// Package crypto holds the hashing helpers wordbot needs.
//
// Fingerprint gives a short, stable identifier for a byte payload; the HTTP
// transport uses it as the ETag of the exported word list.
package crypto
