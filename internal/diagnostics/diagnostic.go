// Package diagnostics collects the checker's structured failure
// records and renders them either for a terminal or as JSON, via a
// code-taxonomy-plus-Encoded-envelope convention.
package diagnostics

import (
	"fmt"

	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
	"github.com/lam-lang/checklam/internal/types"
)

// Code taxonomy, by checker phase. NAME### covers name resolution,
// TYP### covers unification and the rest of constraint solving,
// TC### mirrors a defaulting/ambiguity family.
const (
	CodeBindingNotFound   = "NAME001"
	CodeUnificationFailed = "TYP001"
	CodeArityMismatch     = "TYP002"
	CodeInfiniteType      = "TYP003"
	CodeDeferredAmbiguity = "TC007"
)

// Severity distinguishes a hard failure from an advisory note. Error
// is required by every diagnostic spec.md names; Warning is this
// implementation's supplemented addition, used only by
// DeferredAmbiguity below.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single structured checker failure. Types embedded in
// a Diagnostic are always fully substituted before it is built, so
// Message() always shows the user a resolved form.
type Diagnostic interface {
	Code() string
	Message() string
	Pos() token.Pos
	Severity() Severity
}

// BindingNotFound records a ReferenceExpression whose name resolves to
// nothing in scope or the environment stack. Checking recovers locally
// by treating the reference as Any and continues.
type BindingNotFound struct {
	Name string
	At   token.Token
}

func (d *BindingNotFound) Code() string       { return CodeBindingNotFound }
func (d *BindingNotFound) Pos() token.Pos     { return d.At.Pos }
func (d *BindingNotFound) Severity() Severity { return SeverityError }
func (d *BindingNotFound) Message() string {
	return fmt.Sprintf("unbound name %q", d.Name)
}

// UnificationFailed records two substituted types that cannot be made
// equal, anchored at the node whose check produced the Equal call.
type UnificationFailed struct {
	Left, Right types.Type
	Origin      ast.Node
}

func (d *UnificationFailed) Code() string { return CodeUnificationFailed }
func (d *UnificationFailed) Pos() token.Pos {
	return d.Origin.First().Pos
}
func (d *UnificationFailed) Severity() Severity { return SeverityError }
func (d *UnificationFailed) Message() string {
	return fmt.Sprintf("cannot unify %s with %s", d.Left, d.Right)
}

// ArityMismatch records two TArrow types unified with a different
// number of parameters. Spec's tagged record carries only the two
// types; Origin is this implementation's addition so the diagnostic
// can still report a source position.
type ArityMismatch struct {
	Left, Right types.Type
	Origin      ast.Node
}

func (d *ArityMismatch) Code() string { return CodeArityMismatch }
func (d *ArityMismatch) Pos() token.Pos {
	return d.Origin.First().Pos
}
func (d *ArityMismatch) Severity() Severity { return SeverityError }
func (d *ArityMismatch) Message() string {
	return fmt.Sprintf("arity mismatch between %s and %s", d.Left, d.Right)
}

// InfiniteType records an occurs-check violation: substituting Var
// into Type would produce an infinite type. This diagnostic is not
// named in every source the checker is grounded on (some return a
// silent failure signal instead); emitting it here is the documented
// choice for this implementation rather than failing silently.
type InfiniteType struct {
	Var    types.Type
	Type   types.Type
	Origin ast.Node
}

func (d *InfiniteType) Code() string { return CodeInfiniteType }
func (d *InfiniteType) Pos() token.Pos {
	return d.Origin.First().Pos
}
func (d *InfiniteType) Severity() Severity { return SeverityError }
func (d *InfiniteType) Message() string {
	return fmt.Sprintf("infinite type: %s occurs in %s", d.Var, d.Type)
}

// DeferredAmbiguity records a name written in a TypeAssert annotation
// that resolved to neither a builtin nor anything in the environment,
// mirroring a TC007-style defaulting-ambiguity warning. Checking
// still proceeds by treating the name as a fresh, unconstrained
// variable, but the annotation itself failed to pin anything down.
type DeferredAmbiguity struct {
	Name string
	At   token.Token
}

func (d *DeferredAmbiguity) Code() string       { return CodeDeferredAmbiguity }
func (d *DeferredAmbiguity) Pos() token.Pos     { return d.At.Pos }
func (d *DeferredAmbiguity) Severity() Severity { return SeverityWarning }
func (d *DeferredAmbiguity) Message() string {
	return fmt.Sprintf("annotation name %q did not resolve; treated as unconstrained", d.Name)
}
