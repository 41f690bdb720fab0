package jsonish

// DecodeConfig controls how Decode parses its input. The value
// returned by NewDecodeConfig is the package default: loose grammar,
// 1024 levels of nesting. A bare zero value differs from it: its
// nesting depth is unlimited.
//
// DecodeConfig is immutable: each With* method returns a new value,
// leaving the receiver untouched, so a base config can be shared and
// specialized per call without risk of aliasing.
type DecodeConfig struct {
	strict   bool
	maxDepth int
}

// defaultMaxDepth is the nesting cap applied unless overridden with
// WithMaxDepth. It exists to fail inputs with pathological nesting
// before they exhaust the goroutine stack.
const defaultMaxDepth = 1024

// NewDecodeConfig returns the default decode configuration: loose mode,
// max depth 1024.
func NewDecodeConfig() DecodeConfig {
	return DecodeConfig{strict: false, maxDepth: defaultMaxDepth}
}

// WithStrict sets whether only RFC 8259 grammar is accepted. When false
// (the default), the loose extensions described in the package doc are
// enabled: trailing commas, comments, numbers missing a leading zero,
// and escaped line continuations in strings.
func (c DecodeConfig) WithStrict(strict bool) DecodeConfig {
	c.strict = strict
	return c
}

// WithMaxDepth sets the nesting cap for arrays and objects. Decode fails
// with DepthExceeded once nesting exceeds this value. n <= 0 means
// "no limit", which defeats the stack-exhaustion guard and should only
// be used on trusted input.
func (c DecodeConfig) WithMaxDepth(n int) DecodeConfig {
	c.maxDepth = n
	return c
}

// EncodeConfig controls how Marshal renders a value to text. The value
// returned by NewEncodeConfig is the package default: UTF-8 output,
// solidus escaped as \/, max depth 1024. A bare zero value differs from
// it: '/' is emitted plain and nesting depth is unlimited.
type EncodeConfig struct {
	ensureASCII   bool
	escapeSolidus bool
	maxDepth      int
}

// NewEncodeConfig returns the default encode configuration: ensure-ASCII
// off (emit UTF-8 directly), solidus escaped as \/, max depth 1024.
func NewEncodeConfig() EncodeConfig {
	return EncodeConfig{ensureASCII: false, escapeSolidus: true, maxDepth: defaultMaxDepth}
}

// WithEnsureASCII sets whether non-ASCII codepoints are forced into
// \uXXXX form (and, above U+FFFF, a \uXXXX\uYYYY surrogate pair)
// instead of being emitted as UTF-8 bytes.
func (c EncodeConfig) WithEnsureASCII(ensure bool) EncodeConfig {
	c.ensureASCII = ensure
	return c
}

// WithEscapeSolidus sets whether '/' is escaped as \/ (the default,
// matching this codec's decode-side acceptance of \/). Set to false to
// emit a plain '/' instead.
func (c EncodeConfig) WithEscapeSolidus(escape bool) EncodeConfig {
	c.escapeSolidus = escape
	return c
}

// WithMaxDepth sets the nesting cap used to detect cycles introduced by
// the caller's input graph (Marshal never claims cycle support; a cycle
// surfaces as DepthExceeded instead of hanging).
func (c EncodeConfig) WithMaxDepth(n int) EncodeConfig {
	c.maxDepth = n
	return c
}
