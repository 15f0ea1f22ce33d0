// Package sanitizer normalizes user-entered contact data before it is
// validated or shown back to the visitor.
//
// All functions are idempotent and never fail: input that cannot be
// normalized is returned trimmed, or empty when nothing meaningful is left.
package sanitizer
