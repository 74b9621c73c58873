package json

import (
	"io"
	"strconv"
	"strings"
	"time"
)

// defaultMaxDepth bounds container nesting when Control.MaxDepth is left
// at zero. Documents deeper than this have bigger problems than the
// parser failing.
const defaultMaxDepth = 1024

// parser is a recursive-descent scanner over a byte slice. It tracks
// (line, col) for diagnostics by remembering the offset of the current
// line's first byte and bumping a line counter on every '\n', the same
// bookkeeping the original C++ parser's line_info did.
type parser struct {
	data      []byte
	pos       int
	line      int
	lineStart int
	ctrl      Control
	maxDepth  int
	stats     Stats

	containerStack []Kind
}

func newParser(data []byte, ctrl Control) *parser {
	maxDepth := ctrl.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &parser{data: data, line: 1, lineStart: 0, ctrl: ctrl, maxDepth: maxDepth}
}

func (p *parser) eof() bool       { return p.pos >= len(p.data) }
func (p *parser) cur() byte       { return p.data[p.pos] }
func (p *parser) col() int        { return p.pos - p.lineStart + 1 }
func (p *parser) loc() (int, int) { return p.line, p.col() }

func (p *parser) advance() {
	if p.pos < len(p.data) && p.data[p.pos] == '\n' {
		p.line++
		p.lineStart = p.pos + 1
	}
	p.pos++
}

func (p *parser) errf(kind ErrorKind, format string, args ...any) *ParseError {
	line, col := p.loc()
	return newParseError(kind, line, col, format, args...)
}

// skipWhitespaceAndComments skips space, tab, CR, and LF bytes, plus,
// when Mode.AllowComments is set, // line comments and /* */ block
// comments (no nesting).
func (p *parser) skipWhitespaceAndComments() error {
	for !p.eof() {
		switch p.cur() {
		case ' ', '\t', '\r', '\n':
			p.advance()
			continue
		}
		if p.ctrl.Mode.AllowComments && p.cur() == '/' && p.pos+1 < len(p.data) {
			switch p.data[p.pos+1] {
			case '/':
				p.advance()
				p.advance()
				for !p.eof() && p.cur() != '\n' {
					p.advance()
				}
				continue
			case '*':
				p.advance()
				p.advance()
				closed := false
				for !p.eof() {
					if p.cur() == '*' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '/' {
						p.advance()
						p.advance()
						closed = true
						break
					}
					p.advance()
				}
				if !closed {
					return p.errf(KindSyntax, "unterminated block comment")
				}
				continue
			}
		}
		return nil
	}
	return nil
}

func (p *parser) pushContainer(k Kind) error {
	if len(p.containerStack) >= p.maxDepth {
		return p.errf(KindDepthExceeded, "container nesting exceeds max depth %d", p.maxDepth)
	}
	p.containerStack = append(p.containerStack, k)
	if len(p.containerStack) > p.stats.MaxDepth {
		p.stats.MaxDepth = len(p.containerStack)
	}
	return nil
}

func (p *parser) popContainer() {
	p.containerStack = p.containerStack[:len(p.containerStack)-1]
}

// parseValue parses any single JSON value at the cursor, applying the
// schema hook (if configured) and the statistics counters once the value
// is fully built ("closed").
func (p *parser) parseValue(path string) (*Value, error) {
	if err := p.skipWhitespaceAndComments(); err != nil {
		return nil, err
	}
	if p.eof() {
		return nil, p.errf(KindSyntax, "unexpected end of input, expected value")
	}

	var val *Value
	var err error

	switch b := p.cur(); {
	case b == '{':
		val, err = p.parseObject(path)
	case b == '[':
		val, err = p.parseArray(path)
	case b == '"':
		val, err = p.parseStringValue('"')
	case b == '\'' && p.ctrl.Mode.AllowFlexibleStrings:
		val, err = p.parseStringValue('\'')
	case b == '-' || isDigit(b):
		val, err = p.scanNumber()
	case b == 't' || b == 'T':
		val, err = p.parseLiteral("true", Bool(true))
	case b == 'f' || b == 'F':
		val, err = p.parseLiteral("false", Bool(false))
	case b == 'n' || b == 'N':
		val, err = p.parseLiteral("null", Null())
	default:
		err = p.errf(KindSyntax, "unexpected character %q", b)
	}
	if err != nil {
		return nil, err
	}

	p.stats.countKind(val.Kind())

	if p.ctrl.Schema != nil {
		if verr := p.ctrl.Schema.Validate(path, val); verr != nil {
			line, col := p.loc()
			return nil, &ParseError{Kind: KindSchema, Line: line, Column: col, Msg: verr.Error()}
		}
	}

	return val, nil
}

func (p *parser) parseLiteral(word string, val *Value) (*Value, error) {
	n := len(word)
	if p.pos+n > len(p.data) {
		return nil, p.errf(KindSyntax, "expected literal %q", word)
	}
	chunk := string(p.data[p.pos : p.pos+n])

	matches := chunk == word
	if p.ctrl.Mode.AllowNocaseValues {
		matches = strings.EqualFold(chunk, word)
	}
	if !matches {
		return nil, p.errf(KindSyntax, "expected literal %q", word)
	}
	if p.pos+n < len(p.data) && isIdentByte(p.data[p.pos+n]) {
		return nil, p.errf(KindSyntax, "expected literal %q", word)
	}
	for i := 0; i < n; i++ {
		p.advance()
	}
	return val, nil
}

func (p *parser) parseObject(path string) (*Value, error) {
	p.advance() // consume '{'
	if err := p.pushContainer(KindObject); err != nil {
		return nil, err
	}
	defer p.popContainer()

	obj := NewObject()

	if err := p.skipWhitespaceAndComments(); err != nil {
		return nil, err
	}
	if !p.eof() && p.cur() == '}' {
		p.advance()
		return obj, nil
	}

	for {
		if err := p.skipWhitespaceAndComments(); err != nil {
			return nil, err
		}
		key, keyLine, keyCol, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.stats.Keys++

		if err := p.skipWhitespaceAndComments(); err != nil {
			return nil, err
		}
		if p.eof() || p.cur() != ':' {
			return nil, p.errf(KindSyntax, "expected ':' after object key")
		}
		p.advance()

		val, err := p.parseValue(childPath(path, key))
		if err != nil {
			return nil, err
		}

		if err := p.installKey(obj, key, val, keyLine, keyCol); err != nil {
			return nil, err
		}

		if err := p.skipWhitespaceAndComments(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errf(KindSyntax, "unexpected end of input in object")
		}
		switch p.cur() {
		case ',':
			p.advance()
			continue
		case '}':
			p.advance()
			return obj, nil
		default:
			return nil, p.errf(KindSyntax, "expected ',' or '}' in object")
		}
	}
}

func (p *parser) installKey(obj *Value, key string, val *Value, keyLine, keyCol int) error {
	if !obj.Has(key) {
		return obj.Set(key, val)
	}
	switch p.ctrl.DupKey {
	case DupReject:
		return &ParseError{Kind: KindDuplicateKey, Line: keyLine, Column: keyCol, Msg: "duplicate key " + strconv.Quote(key)}
	case DupAccept:
		return obj.Set(key, val)
	case DupIgnore:
		return nil
	case DupAppend:
		obj.appendDuplicate(key, val)
		return nil
	}
	return nil
}

func (p *parser) parseArray(path string) (*Value, error) {
	p.advance() // consume '['
	if err := p.pushContainer(KindArray); err != nil {
		return nil, err
	}
	defer p.popContainer()

	arr := NewArray()

	if err := p.skipWhitespaceAndComments(); err != nil {
		return nil, err
	}
	if !p.eof() && p.cur() == ']' {
		p.advance()
		return arr, nil
	}

	idx := 0
	for {
		val, err := p.parseValue(childPath(path, strconv.Itoa(idx)))
		if err != nil {
			return nil, err
		}
		arr.arr = append(arr.arr, val)
		idx++

		if err := p.skipWhitespaceAndComments(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errf(KindSyntax, "unexpected end of input in array")
		}
		switch p.cur() {
		case ',':
			p.advance()
			continue
		case ']':
			p.advance()
			return arr, nil
		default:
			return nil, p.errf(KindSyntax, "expected ',' or ']' in array")
		}
	}
}

// parseKey recognizes an object key: a double-quoted string always, or
// (when Mode.AllowFlexibleKeys is set) a single-quoted string or a bare
// [A-Za-z_][A-Za-z0-9_]* identifier. It returns the key together with the
// (line, col) of the key's first content byte, which is where a
// duplicate-key error is anchored.
func (p *parser) parseKey() (string, int, int, error) {
	if p.eof() {
		return "", 0, 0, p.errf(KindSyntax, "expected object key")
	}
	switch b := p.cur(); {
	case b == '"':
		p.advance()
		line, col := p.loc()
		s, err := p.scanStringContent('"')
		return s, line, col, err
	case b == '\'' && p.ctrl.Mode.AllowFlexibleKeys:
		p.advance()
		line, col := p.loc()
		s, err := p.scanStringContent('\'')
		return s, line, col, err
	case p.ctrl.Mode.AllowFlexibleKeys && isIdentStart(b):
		line, col := p.loc()
		start := p.pos
		p.advance()
		for !p.eof() && isIdentByte(p.cur()) {
			p.advance()
		}
		return string(p.data[start:p.pos]), line, col, nil
	default:
		return "", 0, 0, p.errf(KindSyntax, "expected object key")
	}
}

func (p *parser) parseStringValue(quote byte) (*Value, error) {
	p.advance() // consume opening quote
	s, err := p.scanStringContent(quote)
	if err != nil {
		return nil, err
	}
	return Str(s), nil
}

// scanStringContent scans string body bytes up to and including the
// closing quote, which must already have its opener consumed, handling
// the standard backslash escapes and \uXXXX surrogate pairs.
func (p *parser) scanStringContent(quote byte) (string, error) {
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errf(KindSyntax, "unterminated string")
		}
		c := p.cur()
		if c == quote {
			p.advance()
			return b.String(), nil
		}
		if c == '\\' {
			p.advance()
			if p.eof() {
				return "", p.errf(KindSyntax, "unterminated escape sequence")
			}
			if err := p.scanEscape(&b); err != nil {
				return "", err
			}
			continue
		}
		if c < 0x20 {
			return "", p.errf(KindSyntax, "control character in string")
		}
		b.WriteByte(c)
		p.advance()
	}
}

func (p *parser) scanEscape(b *strings.Builder) error {
	switch c := p.cur(); c {
	case '"':
		b.WriteByte('"')
		p.advance()
	case '\\':
		b.WriteByte('\\')
		p.advance()
	case '/':
		b.WriteByte('/')
		p.advance()
	case 'b':
		b.WriteByte('\b')
		p.advance()
	case 'f':
		b.WriteByte('\f')
		p.advance()
	case 'n':
		b.WriteByte('\n')
		p.advance()
	case 'r':
		b.WriteByte('\r')
		p.advance()
	case 't':
		b.WriteByte('\t')
		p.advance()
	case 'u':
		p.advance()
		r, err := p.scanUnicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	default:
		return p.errf(KindSyntax, "invalid escape sequence \\%c", c)
	}
	return nil
}

func (p *parser) scanUnicodeEscape() (rune, error) {
	u1, err := p.scanHex4()
	if err != nil {
		return 0, err
	}
	if u1 >= 0xD800 && u1 <= 0xDBFF {
		if p.pos+1 >= len(p.data) || p.cur() != '\\' || p.data[p.pos+1] != 'u' {
			return 0, p.errf(KindSyntax, "unpaired surrogate \\u%04x", u1)
		}
		p.advance() // backslash
		p.advance() // u
		u2, err := p.scanHex4()
		if err != nil {
			return 0, err
		}
		if u2 < 0xDC00 || u2 > 0xDFFF {
			return 0, p.errf(KindSyntax, "unpaired surrogate \\u%04x", u1)
		}
		r := (rune(u1-0xD800) << 10) | rune(u2-0xDC00)
		return r + 0x10000, nil
	}
	if u1 >= 0xDC00 && u1 <= 0xDFFF {
		return 0, p.errf(KindSyntax, "unpaired low surrogate \\u%04x", u1)
	}
	return rune(u1), nil
}

func (p *parser) scanHex4() (uint32, error) {
	if p.pos+4 > len(p.data) {
		return 0, p.errf(KindSyntax, "incomplete \\u escape")
	}
	var v uint32
	for i := 0; i < 4; i++ {
		c := p.data[p.pos]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, p.errf(KindSyntax, "invalid hex digit in \\u escape")
		}
		v = v*16 + d
		p.advance()
	}
	return v, nil
}

func isIdentStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// parseDocument is the shared implementation behind Parse/ParseBytes/
// ParseInput: skip leading whitespace/comments, parse exactly one value,
// skip trailing whitespace/comments, and reject any remaining bytes as
// trailing garbage.
func parseDocument(data []byte, ctrl Control) (*Value, *Stats, error) {
	start := time.Now()
	p := newParser(data, ctrl)
	fail := func(err error) (*Value, *Stats, error) {
		p.stats.Bytes = int64(p.pos)
		p.stats.DurationNS = time.Since(start).Nanoseconds()
		return nil, &p.stats, err
	}

	if err := p.skipWhitespaceAndComments(); err != nil {
		return fail(err)
	}
	val, err := p.parseValue("")
	if err != nil {
		return fail(err)
	}
	if err := p.skipWhitespaceAndComments(); err != nil {
		return fail(err)
	}
	if !p.eof() {
		return fail(p.errf(KindSyntax, "trailing garbage after document"))
	}

	p.stats.Bytes = int64(len(data))
	p.stats.DurationNS = time.Since(start).Nanoseconds()
	return val, &p.stats, nil
}

// Parse reads an entire JSON document from r and parses it.
func Parse(r io.Reader, ctrl Control) (*Value, *Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &ParseError{Kind: KindIO, Msg: err.Error()}
	}
	return parseDocument(data, ctrl)
}

// ParseBytes parses a JSON document held entirely in memory.
func ParseBytes(b []byte, ctrl Control) (*Value, *Stats, error) {
	return parseDocument(b, ctrl)
}

// ParseString parses a JSON document held in a string.
func ParseString(s string, ctrl Control) (*Value, *Stats, error) {
	return parseDocument([]byte(s), ctrl)
}

// ParseInput parses a JSON document presented through an Input: a
// memory-mapped file or a borrowed buffer. ParseInput does not close in;
// the caller owns that lifecycle.
func ParseInput(in Input, ctrl Control) (*Value, *Stats, error) {
	return parseDocument(in.Bytes(), ctrl)
}
