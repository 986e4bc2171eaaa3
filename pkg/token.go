package holyc

import "fmt"

// TokenKind is an ID that correlates to the symbol a token signifies.
//
//go:generate stringer -type=TokenKind
type TokenKind int

const (
	EOF TokenKind = iota

	IDENTIFIER
	KEYWORD
	INT
	FLOAT
	STRING
	CHAR

	ADD
	SUB
	MUL
	DIV
	MOD
	POW
	NOT
	XOR

	INC
	DEC

	LSH
	RSH
	BNOT
	BXOR
	BAND
	BOR

	LT
	GT
	LTE
	GTE
	EQ
	NEQ
	AND
	OR

	ASSIGN
	ADDEQ
	SUBEQ
	MULEQ
	DIVEQ
	MODEQ
	LSHEQ
	RSHEQ
	ANDEQ
	OREQ
	XOREQ

	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE

	SEMICOLON
	COLON
	DOT
	COMMA
	ARROW
	ELLIPSIS
)

var tokenKindNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	INT:        "INT",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	CHAR:       "CHAR",
	ADD:        "ADD",
	SUB:        "SUB",
	MUL:        "MUL",
	DIV:        "DIV",
	MOD:        "MOD",
	POW:        "POW",
	NOT:        "NOT",
	XOR:        "XOR",
	INC:        "INC",
	DEC:        "DEC",
	LSH:        "LSH",
	RSH:        "RSH",
	BNOT:       "BNOT",
	BXOR:       "BXOR",
	BAND:       "BAND",
	BOR:        "BOR",
	LT:         "LT",
	GT:         "GT",
	LTE:        "LTE",
	GTE:        "GTE",
	EQ:         "EQ",
	NEQ:        "NEQ",
	AND:        "AND",
	OR:         "OR",
	ASSIGN:     "ASSIGN",
	ADDEQ:      "ADDEQ",
	SUBEQ:      "SUBEQ",
	MULEQ:      "MULEQ",
	DIVEQ:      "DIVEQ",
	MODEQ:      "MODEQ",
	LSHEQ:      "LSHEQ",
	RSHEQ:      "RSHEQ",
	ANDEQ:      "ANDEQ",
	OREQ:       "OREQ",
	XOREQ:      "XOREQ",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
	COLON:      "COLON",
	DOT:        "DOT",
	COMMA:      "COMMA",
	ARROW:      "ARROW",
	ELLIPSIS:   "ELLIPSIS",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords holds the fixed, case-sensitive keyword set. An identifier
// lexeme matching one of these verbatim is emitted as KEYWORD rather than
// IDENTIFIER. no_warn, reg, noreg, static and extern are qualifier-position
// pseudo-keywords; the rest introduce statement forms.
var keywords = map[string]bool{
	"if":      true,
	"else":    true,
	"while":   true,
	"for":     true,
	"switch":  true,
	"case":    true,
	"asm":     true,
	"try":     true,
	"catch":   true,
	"throw":   true,
	"break":   true,
	"goto":    true,
	"class":   true,
	"union":   true,
	"no_warn": true,
	"reg":     true,
	"noreg":   true,
	"static":  true,
	"extern":  true,
}

// Position records a location inside a source file: the byte index of the
// first byte, the 1-based line, and the 1-based column at that byte.
type Position struct {
	Index uint64
	Line  uint64
	Col   uint64
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Kind TokenKind

	// Value is the decoded lexeme payload. HasValue is true iff Kind is one
	// of IDENTIFIER, KEYWORD, INT, FLOAT, STRING or CHAR; it is false (and
	// Value empty) for every punctuation/operator token.
	Value    string
	HasValue bool

	Pos Position

	// Length is the lexeme's length in source bytes. For STRING and CHAR
	// this includes the surrounding quote bytes, matching tinyhcc's
	// token.len (computed as the distance from the opening to past the
	// closing quote).
	Length uint64
}

func (t Token) String() string {
	if t.HasValue {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
	}
	return t.Kind.String()
}

// Register is a hardware register hint attached to a variable's type
// descriptor via the reg/noreg qualifier keywords.
type Register int

const (
	RegNone Register = iota // noreg, or no register qualifier at all
	RegAuto                 // reg with no register named

	RegRAX
	RegRBX
	RegRCX
	RegRDX
	RegRSI
	RegRDI
	RegRBP
	RegRSP
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15

	RegEAX
	RegEBX
	RegECX
	RegESP
	RegEBP
	RegEDI
	RegESI
	RegEDX

	RegAX
	RegBX
	RegCX
	RegSP
	RegBP
	RegDI
	RegSI
	RegDX

	RegAH
	RegAL
	RegBH
	RegBL
	RegCH
	RegCL
	RegSPL
	RegBPL
	RegDIL
	RegSIL
	RegDH
	RegDL

	RegXMM0
	RegXMM1
	RegXMM2
	RegXMM3
	RegXMM4
	RegXMM5
	RegXMM6
	RegXMM7
)

// registerNames maps the upper-cased surface spelling of a register to its
// Register value. Any name not present here is not a valid variable
// register hint.
var registerNames = map[string]Register{
	"RAX": RegRAX, "RBX": RegRBX, "RCX": RegRCX, "RDX": RegRDX,
	"RSI": RegRSI, "RDI": RegRDI, "RBP": RegRBP, "RSP": RegRSP,
	"R8": RegR8, "R9": RegR9, "R10": RegR10, "R11": RegR11,
	"R12": RegR12, "R13": RegR13, "R14": RegR14, "R15": RegR15,

	"EAX": RegEAX, "EBX": RegEBX, "ECX": RegECX, "ESP": RegESP,
	"EBP": RegEBP, "EDI": RegEDI, "ESI": RegESI, "EDX": RegEDX,

	"AX": RegAX, "BX": RegBX, "CX": RegCX, "SP": RegSP,
	"BP": RegBP, "DI": RegDI, "SI": RegSI, "DX": RegDX,

	"AH": RegAH, "AL": RegAL, "BH": RegBH, "BL": RegBL,
	"CH": RegCH, "CL": RegCL, "SPL": RegSPL, "BPL": RegBPL,
	"DIL": RegDIL, "SIL": RegSIL, "DH": RegDH, "DL": RegDL,

	"XMM0": RegXMM0, "XMM1": RegXMM1, "XMM2": RegXMM2, "XMM3": RegXMM3,
	"XMM4": RegXMM4, "XMM5": RegXMM5, "XMM6": RegXMM6, "XMM7": RegXMM7,
}

// Qualifier is a bit-set over a type descriptor's boolean attributes.
// Vararg and Function are internal bookkeeping bits set by the parser, not
// user-written keywords.
type Qualifier uint16

const (
	QStatic Qualifier = 1 << iota
	QPrivate
	QPublic
	QExtern
	QVararg
	QFunction
)
