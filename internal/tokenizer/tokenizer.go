package tokenizer

// isWordByte reports whether b may appear inside a token: ASCII letters,
// digits, and underscore. Everything else is a delimiter, including
// punctuation, whitespace, and any byte of a multi-byte UTF-8 sequence.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}

// EachToken scans line for tokens of at least minLen bytes and invokes fn
// once per token, in order of appearance. Uppercase ASCII letters are folded
// to lowercase in place, so the caller's buffer is modified; the slices
// passed to fn alias that buffer and are only valid until fn returns or the
// buffer is reused.
//
// A token still in progress at end of line is emitted. Tokens shorter than
// minLen are dropped entirely, neither counted nor reported. An empty line
// yields no calls.
//
// This is the allocation-free form used on the hot path; Tokenize wraps it
// for callers that want independent strings.
func EachToken(line []byte, minLen int, fn func(token []byte)) {
	start := -1
	for i := 0; i < len(line); i++ {
		b := line[i]
		if isWordByte(b) {
			if b >= 'A' && b <= 'Z' {
				line[i] = b + ('a' - 'A')
			}
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minLen {
			fn(line[start:i])
		}
		start = -1
	}
	if start >= 0 && len(line)-start >= minLen {
		fn(line[start:])
	}
}

// Tokenize splits line into lowercase tokens of at least minLen bytes and
// returns them as independent strings. It is the convenience form of
// EachToken for tests, tools, and small inputs.
func Tokenize(line string, minLen int) []string {
	var tokens []string
	EachToken([]byte(line), minLen, func(tok []byte) {
		tokens = append(tokens, string(tok))
	})
	return tokens
}
