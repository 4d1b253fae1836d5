// Released under an MIT license. See LICENSE.

// Package commands provides tern's primitive procedures.
//
// Primitives are Go functions from an argument list to a value. They do not
// touch the machine that calls them. Primitives that read or write the
// session's standard ports receive the session as well.
package commands

import (
	"strings"
	"unicode"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/port"
)

// Session is the view of a session that I/O primitives use.
type Session interface {
	Errors() *port.T
	Input() *port.T
	Output() *port.T
}

// Builtins returns a mapping of names to primitives.
func Builtins() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		// Arithmetic.
		"*":              mul,
		"+":              add,
		"-":              sub,
		"-1+":            decrement,
		"/":              div,
		"1+":             increment,
		"abs":            abs,
		"ceiling":        rounding(ceiling),
		"exact":          exact,
		"exact->inexact": inexact,
		"expt":           expt,
		"floor":          rounding(floor),
		"gcd":            gcd,
		"inexact":        inexact,
		"inexact->exact": exact,
		"lcm":            lcm,
		"max":            extremum(1),
		"min":            extremum(-1),
		"modulo":         modulo,
		"quotient":       quotient,
		"remainder":      remainder,
		"round":          rounding(round),
		"sqrt":           sqrt,
		"square":         square,
		"truncate":       rounding(truncate),

		// Numbers.
		"complex?":                   isNumber,
		"even?":                      parity(0),
		"exact-nonnegative-integer?": isNatural,
		"exact-rational?":            isExactInteger,
		"exact?":                     isExact,
		"inexact?":                   isInexact,
		"integer?":                   isInteger,
		"nan?":                       isNaN,
		"negative?":                  sign(func(n int) bool { return n < 0 }),
		"number->string":             numberToString,
		"number?":                    isNumber,
		"odd?":                       parity(1),
		"positive?":                  sign(func(n int) bool { return n > 0 }),
		"random":                     random,
		"rational?":                  isNumber,
		"real?":                      isNumber,
		"string->number":             stringToNumber,
		"zero?":                      sign(func(n int) bool { return n == 0 }),

		// Relational.
		"<":      compare(func(n int) bool { return n < 0 }),
		"<=":     compare(func(n int) bool { return n <= 0 }),
		"=":      compare(func(n int) bool { return n == 0 }),
		">":      compare(func(n int) bool { return n > 0 }),
		">=":     compare(func(n int) bool { return n >= 0 }),
		"eq?":    eq,
		"equal?": equal,
		"eqv?":   eq,

		// Booleans.
		"boolean=?": booleanEq,
		"boolean?":  isBoolean,
		"not":       not,

		// Pairs and lists.
		"append":    appendLists,
		"assoc":     assoc(equalp),
		"assq":      assoc(Eqv),
		"assv":      assoc(Eqv),
		"caar":      cxr("aa"),
		"cadr":      cxr("ad"),
		"car":       car,
		"cdar":      cxr("da"),
		"cddr":      cxr("dd"),
		"caddr":     cxr("add"),
		"cdddr":     cxr("ddd"),
		"cadddr":    cxr("addd"),
		"cdr":       cdr,
		"cons":      cons,
		"cons*":     consStar,
		"iota":      iota,
		"last-pair": lastPair,
		"length":    length,
		"list":      makeList,
		"list-copy": listCopy,
		"list-ref":  listRef,
		"list-tail": listTail,
		"list?":     isList,
		"make-list": makeListN,
		"member":    member(equalp),
		"memq":      member(Eqv),
		"memv":      member(Eqv),
		"null?":     isNull,
		"pair?":     isPair,
		"reverse":   reverse,
		"set-car!":  setCar,
		"set-cdr!":  setCdr,

		// Symbols.
		"generate-uninterned-symbol": gensym,
		"gensym":                     gensym,
		"intern":                     stringToSymbol,
		"string->symbol":             stringToSymbol,
		"string->uninterned-symbol":  uninterned,
		"symbol->string":             symbolToString,
		"symbol-append":              symbolAppend,
		"symbol<?":                   symbolLess,
		"symbol?":                    isSymbol,

		// Characters.
		"char->digit":      charToDigit,
		"char->integer":    charToInteger,
		"char-alphabetic?": charIs(unicode.IsLetter),
		"char-ci=?":        charCompare(foldRune, func(n int) bool { return n == 0 }),
		"char-downcase":    charMap(unicode.ToLower),
		"char-lower-case?": charIs(unicode.IsLower),
		"char-numeric?":    charIs(unicode.IsDigit),
		"char-upcase":      charMap(unicode.ToUpper),
		"char-upper-case?": charIs(unicode.IsUpper),
		"char-whitespace?": charIs(unicode.IsSpace),
		"char<=?":          charCompare(sameRune, func(n int) bool { return n <= 0 }),
		"char<?":           charCompare(sameRune, func(n int) bool { return n < 0 }),
		"char=?":           charCompare(sameRune, func(n int) bool { return n == 0 }),
		"char>=?":          charCompare(sameRune, func(n int) bool { return n >= 0 }),
		"char>?":           charCompare(sameRune, func(n int) bool { return n > 0 }),
		"char?":            isChar,
		"digit->char":      digitToChar,
		"digit-value":      digitValue,
		"integer->char":    integerToChar,

		// Strings.
		"list->string":          listToString,
		"make-string":           makeString,
		"string":                makeStringFrom,
		"string->list":          stringToList,
		"string->vector":        stringToVector,
		"string-append":         stringAppend,
		"string-ci=?":           stringCompare(strings.ToLower, func(n int) bool { return n == 0 }),
		"string-copy":           stringCopy,
		"string-downcase":       stringMap(strings.ToLower),
		"string-fill!":          stringFill,
		"string-index":          stringIndex,
		"string-join":           stringJoin,
		"string-length":         stringLength,
		"string-null?":          stringNull,
		"string-pad-left":       stringPad(true),
		"string-pad-right":      stringPad(false),
		"string-ref":            stringRef,
		"string-search-all":     stringSearchAll,
		"string-search-forward": stringSearchForward,
		"string-set!":           stringSet,
		"string-upcase":         stringMap(strings.ToUpper),
		"string<=?":             stringCompare(same, func(n int) bool { return n <= 0 }),
		"string<?":              stringCompare(same, func(n int) bool { return n < 0 }),
		"string=?":              stringCompare(same, func(n int) bool { return n == 0 }),
		"string>=?":             stringCompare(same, func(n int) bool { return n >= 0 }),
		"string>?":              stringCompare(same, func(n int) bool { return n > 0 }),
		"string?":               isString,
		"substring":             substring,

		// Vectors.
		"list->vector":  listToVector,
		"make-vector":   makeVector,
		"subvector":     subvector,
		"vector":        makeVectorFrom,
		"vector->list":  vectorToList,
		"vector-copy":   vectorCopy,
		"vector-fill!":  vectorFill,
		"vector-grow":   vectorGrow,
		"vector-length": vectorLength,
		"vector-ref":    vectorRef,
		"vector-set!":   vectorSet,
		"vector?":       isVector,

		// Conditions.
		"access-condition":        accessCondition,
		"condition-kind":          conditionKind,
		"condition/report-string": reportString,
		"condition?":              isCondition,
		"error-irritants":         errorIrritants,
		"error-message":           errorMessage,
		"error-object-irritants":  errorIrritants,
		"error-object-message":    errorMessage,
		"error-object?":           isCondition,
		"error?":                  isCondition,
		"file-error?":             isFileError,
		"read-error?":             isReadError,

		// Environments.
		"environment-assign!":   environmentAssign,
		"environment-assigned?": environmentBound,
		"environment-bound?":    environmentBound,
		"environment-define":    environmentDefine,
		"environment-lookup":    environmentLookup,
		"environment?":          isEnvironment,

		// Ports that do not need the session.
		"char-ready?":        charReady,
		"close-input-port":   closePort,
		"close-output-port":  closePort,
		"close-port":         closePort,
		"delete-file":        deleteFile,
		"eof-object":         eofObject,
		"eof-object?":        isEOF,
		"file-exists?":       exists,
		"get-output-string":  getOutputString,
		"input-port?":        isInputPort,
		"open-input-file":    openInputFile,
		"open-input-string":  openInputString,
		"open-output-file":   openOutputFile,
		"open-output-string": openOutputString,
		"output-port?":       isOutputPort,
		"port?":              isPort,
		"textual-port?":      isPort,

		// Miscellaneous.
		"current-time":    currentTime,
		"default-object?": isDefault,
		"real-time":       realTime,
		"runtime":         elapsed,
		"void":            unspecific,
	}
}

// IO returns a mapping of names to primitives that use the session's ports.
func IO() map[string]func(Session, cell.I) cell.I {
	return map[string]func(Session, cell.I) cell.I{
		"current-error-port":  currentErrorPort,
		"current-input-port":  currentInputPort,
		"current-output-port": currentOutputPort,
		"display":             display,
		"fresh-line":          freshLine,
		"newline":             newline,
		"peek-char":           peekChar,
		"pp":                  prettyPrint,
		"read":                read,
		"read-char":           readChar,
		"read-line":           readLine,
		"read-string":         readString,
		"write":               write,
		"write-char":          writeChar,
		"write-line":          writeLine,
		"write-string":        writeString,
	}
}
