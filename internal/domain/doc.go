// Package domain defines the word list outcomes, rendered results, error
// taxonomy and the contracts between the store, the router and transports.
// It contains plain types, interfaces and the normalization rule shared by
// the store and the router.
package domain
