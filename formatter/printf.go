package formatter

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Render expands a C printf format string against args into w and
// returns the length of the full expansion, which exceeds w.Len() when
// the output was truncated.
//
// Conversions follow C99 printf: d i u o x X c s p f F e E g G a A n %,
// the flags "-+ #0", width and precision including '*', and the length
// modifiers hh h l ll q j z t L. Go arguments carry their own width, so
// only hh and h change how an integer is read; they narrow it to 8 and
// 16 bits. %a prints what glibc prints. A missing argument renders as %!d(MISSING) and an argument of
// the wrong kind as %!d(type=value). Render never panics on a mismatch
// and never writes past w's limit.
func Render(w *Buffer, format string, args ...any) int {
	p := printer{w: w, args: args}
	p.render(format)
	return w.total
}

// maxNumber bounds parsed widths and precisions, as INT_MAX does in C.
const maxNumber = math.MaxInt32

// maxFloatDigits is past the last non-zero digit of any float64's exact
// decimal expansion. Precision beyond it only adds zeros.
const maxFloatDigits = 1100

// maxHexDigits is the number of hex digits in a float64 mantissa.
const maxHexDigits = 13

type lengthMod uint8

const (
	lenNone lengthMod = iota
	lenHH
	lenH
	lenL
	lenLL
	lenJ
	lenZ
	lenT
	lenBigL
)

type spec struct {
	minus, plus, space, sharp, zero bool

	width   int
	prec    int
	hasPrec bool
	length  lengthMod
	verb    byte
	raw     string
}

type printer struct {
	w      *Buffer
	args   []any
	argNum int
	digits [72]byte
}

func (p *printer) render(format string) {
	end := len(format)
	for i := 0; i < end; {
		j := i
		for j < end && format[j] != '%' {
			j++
		}
		if j > i {
			p.w.WriteString(format[i:j])
		}
		if j >= end {
			return
		}

		start := j
		j++
		var s spec

	flags:
		for ; j < end; j++ {
			switch format[j] {
			case '-':
				s.minus = true
			case '+':
				s.plus = true
			case ' ':
				s.space = true
			case '#':
				s.sharp = true
			case '0':
				s.zero = true
			case '\'':
				// Digit grouping depends on the C locale, which is "C" here.
			default:
				break flags
			}
		}

		if j < end && format[j] == '*' {
			j++
			n := p.intArg()
			if n < 0 {
				s.minus = true
				n = -n
			}
			s.width = clampNumber(n)
		} else {
			s.width, j = parseNumber(format, j)
		}

		if j < end && format[j] == '.' {
			j++
			s.hasPrec = true
			if j < end && format[j] == '*' {
				j++
				n := p.intArg()
				if n < 0 {
					s.hasPrec = false
				} else {
					s.prec = clampNumber(n)
				}
			} else {
				s.prec, j = parseNumber(format, j)
			}
		}

		s.length, j = parseLength(format, j)
		if j >= end {
			// Incomplete conversion at the end of the format.
			p.w.WriteString(format[start:])
			return
		}
		s.verb = format[j]
		j++
		s.raw = format[start:j]
		p.convert(&s)
		i = j
	}
}

func parseNumber(format string, i int) (int, int) {
	n := 0
	for ; i < len(format) && format[i] >= '0' && format[i] <= '9'; i++ {
		if n < maxNumber {
			n = n*10 + int(format[i]-'0')
		}
	}
	return clampNumber(n), i
}

func clampNumber(n int) int {
	if n > maxNumber {
		return maxNumber
	}
	return n
}

func parseLength(format string, i int) (lengthMod, int) {
	if i >= len(format) {
		return lenNone, i
	}
	switch format[i] {
	case 'h':
		if i+1 < len(format) && format[i+1] == 'h' {
			return lenHH, i + 2
		}
		return lenH, i + 1
	case 'l':
		if i+1 < len(format) && format[i+1] == 'l' {
			return lenLL, i + 2
		}
		return lenL, i + 1
	case 'q':
		return lenLL, i + 1
	case 'j':
		return lenJ, i + 1
	case 'z':
		return lenZ, i + 1
	case 't':
		return lenT, i + 1
	case 'L':
		return lenBigL, i + 1
	}
	return lenNone, i
}

func (p *printer) next() (any, bool) {
	if p.argNum >= len(p.args) {
		return nil, false
	}
	a := p.args[p.argNum]
	p.argNum++
	return a, true
}

// intArg consumes the argument for a '*' width or precision.
func (p *printer) intArg() int {
	a, ok := p.next()
	if !ok {
		return 0
	}
	v, bits, ok := integerValue(a)
	if !ok {
		return 0
	}
	n := signExtend(v, bits)
	if n > maxNumber {
		return maxNumber
	}
	if n < -maxNumber {
		return -maxNumber
	}
	return int(n)
}

func (p *printer) convert(s *spec) {
	switch s.verb {
	case '%':
		p.w.WriteByte('%')
	case 'd', 'i':
		p.fmtSigned(s)
	case 'u', 'o', 'x', 'X':
		p.fmtUnsigned(s)
	case 'c':
		p.fmtChar(s)
	case 's':
		p.fmtString(s)
	case 'p':
		p.fmtPointer(s)
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		p.fmtFloat(s)
	case 'n':
		p.storeCount(s)
	default:
		p.w.WriteString(s.raw)
	}
}

func (p *printer) missing(s *spec) {
	p.w.WriteString("%!")
	p.w.WriteByte(s.verb)
	p.w.WriteString("(MISSING)")
}

func (p *printer) badArg(s *spec, a any) {
	p.w.WriteString("%!")
	p.w.WriteByte(s.verb)
	p.w.WriteByte('(')
	if a == nil {
		p.w.WriteString("<nil>")
	} else {
		p.w.WriteString(reflect.TypeOf(a).String())
		p.w.WriteByte('=')
		fmt.Fprint(p.w, a)
	}
	p.w.WriteByte(')')
}

func (p *printer) fmtSigned(s *spec) {
	a, ok := p.next()
	if !ok {
		p.missing(s)
		return
	}
	v, bits, ok := integerValue(a)
	if !ok {
		p.badArg(s, a)
		return
	}
	bits = narrow(bits, s.length)
	n := signExtend(v, bits)

	var sign string
	mag := uint64(n)
	switch {
	case n < 0:
		sign = "-"
		mag = uint64(-n)
	case s.plus:
		sign = "+"
	case s.space:
		sign = " "
	}
	p.fmtInteger(s, sign, mag, 10, false)
}

func (p *printer) fmtUnsigned(s *spec) {
	a, ok := p.next()
	if !ok {
		p.missing(s)
		return
	}
	v, bits, ok := integerValue(a)
	if !ok {
		p.badArg(s, a)
		return
	}
	bits = narrow(bits, s.length)
	if bits < 64 {
		v &= 1<<bits - 1
	}

	switch s.verb {
	case 'o':
		p.fmtInteger(s, "", v, 8, false)
	case 'x':
		p.fmtInteger(s, "", v, 16, false)
	case 'X':
		p.fmtInteger(s, "", v, 16, true)
	default:
		p.fmtInteger(s, "", v, 10, false)
	}
}

func (p *printer) fmtInteger(s *spec, prefix string, mag uint64, base int, upper bool) {
	digits := p.digits[:0]
	if !(s.hasPrec && s.prec == 0 && mag == 0) {
		digits = strconv.AppendUint(digits, mag, base)
		if upper {
			for i, c := range digits {
				if c >= 'a' && c <= 'f' {
					digits[i] = c - 'a' + 'A'
				}
			}
		}
	}

	lead := 0
	if s.hasPrec && s.prec > len(digits) {
		lead = s.prec - len(digits)
	}

	if s.sharp {
		switch {
		case base == 8 && lead == 0 && (len(digits) == 0 || digits[0] != '0'):
			lead = 1
		case base == 16 && mag != 0 && upper:
			prefix += "0X"
		case base == 16 && mag != 0:
			prefix += "0x"
		}
	}

	p.emit(s, prefix, lead, digits, 0, nil, !s.hasPrec)
}

// emit writes prefix, lead zeros, body, trail zeros and tail as one
// field of s.width. Zero padding goes between prefix and body when
// zeroPad is allowed.
func (p *printer) emit(s *spec, prefix string, lead int, body []byte, trail int, tail []byte, zeroPad bool) {
	n := len(prefix) + lead + len(body) + trail + len(tail)
	pad := s.width - n
	if pad > 0 && !s.minus {
		if s.zero && zeroPad {
			lead += pad
		} else {
			p.w.writeRepeat(' ', pad)
		}
	}
	p.w.WriteString(prefix)
	p.w.writeRepeat('0', lead)
	p.w.Write(body)
	p.w.writeRepeat('0', trail)
	p.w.Write(tail)
	if pad > 0 && s.minus {
		p.w.writeRepeat(' ', pad)
	}
}

func (p *printer) fmtChar(s *spec) {
	a, ok := p.next()
	if !ok {
		p.missing(s)
		return
	}
	v, bits, ok := integerValue(a)
	if !ok {
		p.badArg(s, a)
		return
	}
	var body []byte
	if s.length == lenL {
		body = utf8.AppendRune(p.digits[:0], rune(signExtend(v, bits)))
	} else {
		body = append(p.digits[:0], byte(v))
	}
	p.emit(s, "", 0, body, 0, nil, false)
}

func (p *printer) fmtString(s *spec) {
	a, ok := p.next()
	if !ok {
		p.missing(s)
		return
	}
	var str string
	switch v := a.(type) {
	case nil:
		// glibc prints "(null)" unless the precision is too small for it.
		if s.hasPrec && s.prec < len("(null)") {
			str = ""
		} else {
			str = "(null)"
		}
	case string:
		str = v
	case []byte:
		str = unsafe.String(unsafe.SliceData(v), len(v))
	case []rune:
		str = string(v)
	case error:
		str = p.safeString(s, v.Error)
	case fmt.Stringer:
		str = p.safeString(s, v.String)
	default:
		rv := reflect.ValueOf(a)
		if rv.Kind() != reflect.String {
			p.badArg(s, a)
			return
		}
		str = rv.String()
	}
	if s.hasPrec && s.prec < len(str) {
		str = str[:s.prec]
	}
	p.emitString(s, str)
}

func (p *printer) emitString(s *spec, str string) {
	pad := s.width - len(str)
	if pad > 0 && !s.minus {
		p.w.writeRepeat(' ', pad)
	}
	p.w.WriteString(str)
	if pad > 0 && s.minus {
		p.w.writeRepeat(' ', pad)
	}
}

// safeString calls a String or Error method, turning a panic into a
// marker the same way package fmt does.
func (p *printer) safeString(s *spec, method func() string) (str string) {
	defer func() {
		if err := recover(); err != nil {
			str = "%!" + string(s.verb) + "(PANIC=" + fmt.Sprint(err) + ")"
		}
	}()
	return method()
}

func (p *printer) fmtPointer(s *spec) {
	a, ok := p.next()
	if !ok {
		p.missing(s)
		return
	}
	var ptr uintptr
	switch v := a.(type) {
	case nil:
	case uintptr:
		ptr = v
	case unsafe.Pointer:
		ptr = uintptr(v)
	default:
		rv := reflect.ValueOf(a)
		switch rv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
			ptr = rv.Pointer()
		case reflect.Uintptr:
			ptr = uintptr(rv.Uint())
		default:
			p.badArg(s, a)
			return
		}
	}
	if ptr == 0 {
		p.emitString(s, "(nil)")
		return
	}
	body := strconv.AppendUint(p.digits[:0], uint64(ptr), 16)
	p.emit(s, "0x", 0, body, 0, nil, false)
}

func (p *printer) storeCount(s *spec) {
	a, ok := p.next()
	if !ok {
		return
	}
	switch v := a.(type) {
	case *int:
		*v = p.w.total
	case *int64:
		*v = int64(p.w.total)
	case *int32:
		*v = int32(p.w.total)
	default:
		p.badArg(s, a)
	}
}

func (p *printer) fmtFloat(s *spec) {
	a, ok := p.next()
	if !ok {
		p.missing(s)
		return
	}
	f, ok := floatValue(a)
	if !ok {
		p.badArg(s, a)
		return
	}

	upper := s.verb >= 'A' && s.verb <= 'Z'
	var sign string
	switch {
	case math.Signbit(f):
		sign = "-"
	case s.plus:
		sign = "+"
	case s.space:
		sign = " "
	}
	abs := math.Abs(f)

	if math.IsInf(f, 0) || math.IsNaN(f) {
		word := "inf"
		if math.IsNaN(f) {
			word = "nan"
		}
		if upper {
			word = string(upperASCII([]byte(word)))
		}
		p.emit(s, sign, 0, []byte(word), 0, nil, false)
		return
	}

	prec := 6
	if s.hasPrec {
		prec = s.prec
	}

	switch s.verb | 0x20 {
	case 'f':
		digits := prec
		if digits > maxFloatDigits {
			digits = maxFloatDigits
		}
		body := strconv.AppendFloat(nil, abs, 'f', digits, 64)
		if prec == 0 && s.sharp {
			body = append(body, '.')
		}
		p.emit(s, sign, 0, body, prec-digits, nil, true)

	case 'e':
		digits := prec
		if digits > maxFloatDigits {
			digits = maxFloatDigits
		}
		body, tail := splitExponent(strconv.AppendFloat(nil, abs, 'e', digits, 64))
		if prec == 0 && s.sharp {
			body = append(body, '.')
		}
		if upper {
			tail = upperASCII(tail)
		}
		p.emit(s, sign, 0, body, prec-digits, tail, true)

	case 'g':
		body, trail, tail := formatGeneral(abs, prec, s.sharp)
		if upper {
			tail = upperASCII(tail)
		}
		p.emit(s, sign, 0, body, trail, tail, true)

	case 'a':
		body, trail, tail := formatHex(abs, prec, s.hasPrec, s.sharp)
		prefix := sign + "0x"
		if upper {
			prefix = sign + "0X"
			body = upperASCII(body)
			tail = upperASCII(tail)
		}
		p.emit(s, prefix, 0, body, trail, tail, true)
	}
}

// formatHex implements %a the way glibc does: the leading digit is the
// float's implicit bit, so subnormals print as 0x0.xxxp-1022, and
// rounding to a shorter precision carries into the leading digit
// (%.0a of 1.5 is 0x2p+0) rather than renormalising. Rounding is to
// nearest, ties to even.
func formatHex(abs float64, prec int, hasPrec, sharp bool) (body []byte, trail int, tail []byte) {
	bits := math.Float64bits(abs)
	biased := int(bits >> 52 & 0x7ff)
	mant := bits & (1<<52 - 1)

	lead := uint64(1)
	exp := biased - 1023
	if biased == 0 {
		lead = 0
		exp = -1022
		if mant == 0 {
			exp = 0
		}
	}

	digits := maxHexDigits
	if hasPrec && prec < maxHexDigits {
		digits = prec
		shift := uint(4 * (maxHexDigits - prec))
		kept := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint64(1) << (shift - 1)
		odd := kept&1 == 1
		if prec == 0 {
			odd = lead&1 == 1
		}
		if rem > half || rem == half && odd {
			kept++
			if kept>>(4*uint(prec)) != 0 {
				kept = 0
				lead++
			}
		}
		mant = kept
	}

	frac := strconv.AppendUint(nil, mant, 16)
	if n := digits - len(frac); n > 0 {
		frac = append(bytes.Repeat([]byte{'0'}, n), frac...)
	}
	if digits == 0 {
		frac = frac[:0]
	}
	if !hasPrec {
		frac = bytes.TrimRight(frac, "0")
	} else {
		trail = prec - digits
	}

	body = append(body, byte('0'+lead))
	if len(frac) > 0 || trail > 0 || sharp {
		body = append(body, '.')
		body = append(body, frac...)
	}

	tail = append(tail, 'p')
	if exp < 0 {
		tail = append(tail, '-')
		exp = -exp
	} else {
		tail = append(tail, '+')
	}
	tail = strconv.AppendInt(tail, int64(exp), 10)
	return body, trail, tail
}

// formatGeneral implements %g: %e when the exponent is below -4 or not
// below the precision, %f otherwise, then trailing zeros are removed
// unless sharp is set. It returns the mantissa, the number of extra
// zeros to append to it and the exponent part.
func formatGeneral(abs float64, prec int, sharp bool) (body []byte, trail int, tail []byte) {
	if prec == 0 {
		prec = 1
	}
	digits := prec
	if digits > maxFloatDigits {
		digits = maxFloatDigits
	}

	exp := 0
	if abs != 0 {
		e := strconv.AppendFloat(nil, abs, 'e', digits-1, 64)
		_, t := splitExponent(e)
		exp, _ = strconv.Atoi(string(t[1:]))
	}

	if exp < prec && exp >= -4 {
		fd := prec - 1 - exp
		capped := fd
		if capped > maxFloatDigits {
			capped = maxFloatDigits
		}
		body = strconv.AppendFloat(nil, abs, 'f', capped, 64)
		trail = fd - capped
	} else {
		body, tail = splitExponent(strconv.AppendFloat(nil, abs, 'e', digits-1, 64))
		trail = prec - digits
	}

	if sharp {
		if !containsByte(body, '.') {
			body = append(body, '.')
		}
		return body, trail, tail
	}
	if containsByte(body, '.') {
		i := len(body)
		for i > 0 && body[i-1] == '0' {
			i--
		}
		if i > 0 && body[i-1] == '.' {
			i--
		}
		body = body[:i]
	}
	return body, 0, tail
}

// splitExponent splits "1.5e+02" or "1.8p+01" at the exponent marker.
func splitExponent(b []byte) (mantissa, exponent []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == 'e' || b[i] == 'p' {
			return b[:i:i], b[i:]
		}
	}
	return b, nil
}

func upperASCII(b []byte) []byte {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return b
}

func containsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

// narrow applies the hh and h length modifiers.
func narrow(bits int, l lengthMod) int {
	switch {
	case l == lenHH && bits > 8:
		return 8
	case l == lenH && bits > 16:
		return 16
	}
	return bits
}

func signExtend(v uint64, bits int) int64 {
	if bits >= 64 {
		return int64(v)
	}
	shift := 64 - uint(bits)
	return int64(v<<shift) >> shift
}

// integerValue returns the two's complement bit pattern of an integer
// argument together with its width in bits.
func integerValue(a any) (v uint64, bits int, ok bool) {
	switch x := a.(type) {
	case int:
		return uint64(x), strconv.IntSize, true
	case int8:
		return uint64(x), 8, true
	case int16:
		return uint64(x), 16, true
	case int32:
		return uint64(x), 32, true
	case int64:
		return uint64(x), 64, true
	case uint:
		return uint64(x), strconv.IntSize, true
	case uint8:
		return uint64(x), 8, true
	case uint16:
		return uint64(x), 16, true
	case uint32:
		return uint64(x), 32, true
	case uint64:
		return x, 64, true
	case uintptr:
		return uint64(x), strconv.IntSize, true
	case bool:
		if x {
			return 1, 32, true
		}
		return 0, 32, true
	case nil:
		return 0, 0, false
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), int(rv.Type().Size()) * 8, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), int(rv.Type().Size()) * 8, true
	}
	return 0, 0, false
}

func floatValue(a any) (float64, bool) {
	switch x := a.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
