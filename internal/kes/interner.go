package kes

// Symbol is an opaque handle to a piece of interned text. The zero value is
// never handed out, so it can mark the absence of a symbol.
type Symbol uint32

// Interner deduplicates the strings referenced by tokens and AST nodes so
// that name equality is a single integer comparison. Interning the same text
// twice returns the same symbol.
type Interner struct {
	symbols map[string]Symbol
	strings []string
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	in := new(Interner)
	in.symbols = make(map[string]Symbol)
	return in
}

// Intern returns the symbol for the given text, allocating one on first use.
func (in *Interner) Intern(text string) Symbol {
	if sym, ok := in.symbols[text]; ok {
		return sym
	}
	in.strings = append(in.strings, text)
	sym := Symbol(len(in.strings))
	in.symbols[text] = sym
	return sym
}

// Lookup returns the symbol for the given text if it was interned before.
func (in *Interner) Lookup(text string) (Symbol, bool) {
	sym, ok := in.symbols[text]
	return sym, ok
}

// Resolve returns the text behind a symbol.
func (in *Interner) Resolve(sym Symbol) (string, bool) {
	if sym == 0 || int(sym) > len(in.strings) {
		return "", false
	}
	return in.strings[sym-1], true
}

// Len returns the number of distinct strings interned so far.
func (in *Interner) Len() int {
	return len(in.strings)
}
