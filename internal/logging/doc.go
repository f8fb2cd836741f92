// Package logging provides a unified logging interface for the cerf
// command. It abstracts the underlying logging implementation, allowing
// consistent structured logging across the application layer while
// supporting multiple backends. The function library itself never logs.
package logging
