package scheme

// Environment is one frame of the lexical environment: a mapping from
// symbol to value, plus an optional parent frame. Frames form a tree
// rooted at the global frame; closures keep a reference to the frame in
// which they were created, and call frames parent that frame.
type Environment struct {
	bindings map[Symbol]Value
	parent   *Environment
}

// NewEnvironment creates an empty frame enclosed by parent (nil for the
// global frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		bindings: make(map[Symbol]Value),
		parent:   parent,
	}
}

// Define binds sym to v in this frame, shadowing any binding in an
// ancestor frame.
func (e *Environment) Define(sym Symbol, v Value) {
	e.bindings[sym] = v
}

// frameDefining returns the nearest frame in the chain starting at e
// that defines sym, or nil if none does.
func (e *Environment) frameDefining(sym Symbol) *Environment {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.bindings[sym]; ok {
			return f
		}
	}
	return nil
}

// Lookup returns the value bound to sym in the nearest enclosing frame
// that defines it.
func (e *Environment) Lookup(sym Symbol) (Value, error) {
	if f := e.frameDefining(sym); f != nil {
		return f.bindings[sym], nil
	}
	return nil, &SchemeError{Message: "unknown identifier: " + string(sym)}
}

// Assign mutates the binding for sym in the nearest frame that defines
// it. It fails if no such frame exists.
func (e *Environment) Assign(sym Symbol, v Value) error {
	f := e.frameDefining(sym)
	if f == nil {
		return &SchemeError{Message: "unknown identifier: " + string(sym)}
	}
	f.bindings[sym] = v
	return nil
}

// MakeCallFrame builds a child frame binding the formal parameter list
// formals to the already-evaluated args. formals is either a proper
// list (fixed arity), or a list that ends in a symbol (the variadic
// tail gets the remaining args as a fresh Scheme list).
func (e *Environment) MakeCallFrame(formals Value, args []Value) (*Environment, error) {
	frame := NewEnvironment(e)
	i := 0
	rest := formals
	for {
		pair, ok := rest.(*Pair)
		if !ok {
			break
		}
		sym, ok := pair.Car.(Symbol)
		if !ok {
			return nil, &SchemeError{Message: "bad argument to define"}
		}
		if i >= len(args) {
			return nil, &SchemeError{Message: "too few arguments provided"}
		}
		frame.Define(sym, args[i])
		i++
		rest = pair.Cdr
	}

	switch t := rest.(type) {
	case nilType:
		if i < len(args) {
			return nil, &SchemeError{Message: "too many arguments provided"}
		}
	case Symbol:
		frame.Define(t, NewList(args[i:]...))
	default:
		return nil, &SchemeError{Message: "bad argument to define"}
	}

	return frame, nil
}

// CheckFormals validates that formals is a proper or dotted list of
// distinct symbols (spec.md §4.1).
func CheckFormals(formals Value) error {
	seen := make(map[Symbol]bool)
	rest := formals
	for {
		pair, ok := rest.(*Pair)
		if !ok {
			break
		}
		sym, ok := pair.Car.(Symbol)
		if !ok {
			return &SchemeError{Message: "formal parameters provided are not distinct"}
		}
		if seen[sym] {
			return &SchemeError{Message: "formal parameters provided are not distinct"}
		}
		seen[sym] = true
		rest = pair.Cdr
	}

	switch t := rest.(type) {
	case nilType:
		return nil
	case Symbol:
		if seen[t] {
			return &SchemeError{Message: "formal parameters provided are not distinct"}
		}
		return nil
	default:
		return &SchemeError{Message: "formal parameters provided are not distinct"}
	}
}
