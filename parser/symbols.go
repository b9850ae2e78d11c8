package parser

import (
	"fmt"
)

// Symbol represents one label in the symbol table: its name, resolved
// address, and whether a definition has actually been seen yet (a
// symbol can exist as a forward reference before it is defined).
type Symbol struct {
	Name       string
	Value      uint32
	Defined    bool
	Pos        Position
	References []Position
}

// SymbolTable maps label names to resolved addresses. Labels are
// unique: redefining one is an error (data model invariant in spec.md
// section 3). There are no relocation records and no linker-visible
// symbols — resolution is entirely internal to one assembly job.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Define records a label at an address. Redefining an already-defined
// label is an error; resolving a prior forward reference is not.
func (st *SymbolTable) Define(name string, value uint32, pos Position) error {
	if sym, exists := st.symbols[name]; exists {
		if sym.Defined {
			return fmt.Errorf("label %q already defined at %s", name, sym.Pos)
		}
		sym.Value = value
		sym.Defined = true
		sym.Pos = pos
		return nil
	}

	st.symbols[name] = &Symbol{
		Name:    name,
		Value:   value,
		Defined: true,
		Pos:     pos,
	}
	return nil
}

// Reference marks a use of name at pos, creating a forward-reference
// placeholder if the label has not been defined yet.
func (st *SymbolTable) Reference(name string, pos Position) {
	if sym, exists := st.symbols[name]; exists {
		sym.References = append(sym.References, pos)
		return
	}
	st.symbols[name] = &Symbol{
		Name:       name,
		Defined:    false,
		Pos:        pos,
		References: []Position{pos},
	}
}

// Lookup returns the symbol for name, if any.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, exists := st.symbols[name]
	return sym, exists
}

// Get returns the resolved address of name, or an error if it is
// unknown or not yet defined.
func (st *SymbolTable) Get(name string) (uint32, error) {
	sym, exists := st.symbols[name]
	if !exists {
		return 0, fmt.Errorf("undefined label: %q", name)
	}
	if !sym.Defined {
		return 0, fmt.Errorf("label %q referenced but never defined", name)
	}
	return sym.Value, nil
}

// Len reports the number of distinct symbols (defined or referenced),
// used to enforce the static symbol-table capacity bound.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// ResolveForwardReferences checks that every referenced label ended up
// defined by the end of pass 1.
func (st *SymbolTable) ResolveForwardReferences() error {
	for _, sym := range st.GetUndefinedSymbols() {
		if len(sym.References) > 0 {
			return fmt.Errorf("undefined label %q referenced at %s", sym.Name, sym.References[0])
		}
		return fmt.Errorf("undefined label %q", sym.Name)
	}
	return nil
}

// GetUndefinedSymbols returns symbols that were referenced but never defined.
func (st *SymbolTable) GetUndefinedSymbols() []*Symbol {
	var undefined []*Symbol
	for _, sym := range st.symbols {
		if !sym.Defined {
			undefined = append(undefined, sym)
		}
	}
	return undefined
}

// GetUnusedSymbols returns labels that are defined but never referenced,
// used by tools.Lint.
func (st *SymbolTable) GetUnusedSymbols() []*Symbol {
	var unused []*Symbol
	for _, sym := range st.symbols {
		if sym.Defined && len(sym.References) == 0 {
			unused = append(unused, sym)
		}
	}
	return unused
}

// GetAllSymbols returns every symbol in the table.
func (st *SymbolTable) GetAllSymbols() map[string]*Symbol {
	return st.symbols
}
