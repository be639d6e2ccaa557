package diagnostics

// Sink accumulates diagnostics in the order they are discovered.
// Unification is destructive on the substitution, so a failure inside
// one compound unification must not stop the solver from continuing
// over the remaining subterms; every caller in this checker adds to a
// Sink rather than returning early on the first failure.
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink { return &Sink{} }

// Add appends d to the sink.
func (s *Sink) Add(d Diagnostic) { s.diags = append(s.diags, d) }

// All returns every diagnostic added so far, in emission order.
func (s *Sink) All() []Diagnostic { return s.diags }

// Empty reports whether no diagnostic has been added.
func (s *Sink) Empty() bool { return len(s.diags) == 0 }
