package jsonish

// Decode parses a single JSON (or, in loose mode, JSON-ish) value from b
// using the default configuration (loose grammar, max depth 1024) and
// returns it as one of: nil, bool, int64, *big.Int, float64, string,
// []any, or map[string]any.
func Decode(b []byte) (any, error) {
	return NewDecodeConfig().Decode(b)
}

// DecodeString is Decode for a string input.
func DecodeString(s string) (any, error) {
	return NewDecodeConfig().Decode([]byte(s))
}

// Decode parses a single value from b according to the receiver's
// configuration (strict/loose, max nesting depth). A DecodeConfig built
// as a bare zero value (rather than via NewDecodeConfig) has maxDepth 0,
// which WithMaxDepth documents as "no limit" — the zero value and an
// explicit unlimited config behave identically.
func (c DecodeConfig) Decode(b []byte) (any, error) {
	p := newParser(b, c)
	return p.parseTopLevel()
}

// DecodeString is Decode for a string input.
func (c DecodeConfig) DecodeString(s string) (any, error) {
	return c.Decode([]byte(s))
}
