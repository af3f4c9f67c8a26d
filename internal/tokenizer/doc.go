// Package tokenizer splits lines of text into lowercase word tokens for the
// frequency pipeline, applying the minimum-length filter at the source.
//
// # Token Rules
//
// A byte belongs to a token iff it is an ASCII letter, an ASCII digit, or an
// underscore. Any other byte ends the current token and is itself discarded.
// Kept letters are folded to lowercase. A token that reaches the end of the
// line without a trailing delimiter is still emitted. Tokens shorter than
// the configured minimum length are dropped before they are ever counted.
//
//	"Req_42 took 3ms (cache-miss)"  minLen=2
//	  → "req_42" "took" "3ms" "cache" "miss"
//
// Multi-byte UTF-8 sequences never match the token byte classes, so
// non-ASCII runs act as delimiters; this keeps the tokenizer byte-oriented
// and deterministic on arbitrary "mostly text" input such as log files.
//
// # API Shapes
//
// EachToken: callback form, zero allocations per call
//   - Operates on the caller's []byte scratch (e.g. bufio.Scanner.Bytes)
//   - Folds case in place; emitted slices alias the input buffer
//   - Used by pipeline workers on the hot path
//
// Tokenize: slice-of-strings form
//   - Allocates independent strings
//   - Used by tests and tooling
//
// # Properties
//
// Tokenization is idempotent: joining a token sequence with spaces and
// re-tokenizing yields the same multiset of tokens, because emitted tokens
// contain only token bytes, are already lowercase, and already satisfy the
// length filter.
package tokenizer
