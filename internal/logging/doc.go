// Package logging provides the component logger used across wordbot.
package logging
