// Package specification implements a composable boolean predicate engine
// used to express reservation eligibility rules. Specifications are
// stateless, side-effect free and closed under AND/OR/NOT composition.
package specification

import "fmt"

// Specification is a named boolean predicate over a context type.
type Specification[C any] interface {
	// IsSatisfiedBy evaluates the predicate against the context.
	IsSatisfiedBy(ctx C) bool

	// Describe renders a human-readable explanation of the rule.
	Describe() string
}

// explainable is implemented by specifications that can name the leaf
// responsible for a failed evaluation.
type explainable[C any] interface {
	failureReason(ctx C) string
}

// New creates an atomic leaf specification from a named predicate.
func New[C any](name string, predicate func(C) bool) Specification[C] {
	return &leafSpec[C]{name: name, predicate: predicate}
}

type leafSpec[C any] struct {
	name      string
	predicate func(C) bool
}

func (s *leafSpec[C]) IsSatisfiedBy(ctx C) bool {
	return s.predicate(ctx)
}

func (s *leafSpec[C]) Describe() string {
	return s.name
}

func (s *leafSpec[C]) failureReason(ctx C) string {
	if s.IsSatisfiedBy(ctx) {
		return ""
	}
	return fmt.Sprintf("%s is not satisfied", s.name)
}

// And creates a specification satisfied only when both operands are.
func And[C any](a, b Specification[C]) Specification[C] {
	return &andSpec[C]{a: a, b: b}
}

type andSpec[C any] struct {
	a, b Specification[C]
}

func (s *andSpec[C]) IsSatisfiedBy(ctx C) bool {
	return s.a.IsSatisfiedBy(ctx) && s.b.IsSatisfiedBy(ctx)
}

func (s *andSpec[C]) Describe() string {
	return fmt.Sprintf("(%s AND %s)", s.a.Describe(), s.b.Describe())
}

func (s *andSpec[C]) failureReason(ctx C) string {
	reasons := ""
	for _, child := range []Specification[C]{s.a, s.b} {
		if child.IsSatisfiedBy(ctx) {
			continue
		}
		if reasons != "" {
			reasons += "; "
		}
		reasons += FailureReason(child, ctx)
	}
	return reasons
}

// Or creates a specification satisfied when either operand is.
func Or[C any](a, b Specification[C]) Specification[C] {
	return &orSpec[C]{a: a, b: b}
}

type orSpec[C any] struct {
	a, b Specification[C]
}

func (s *orSpec[C]) IsSatisfiedBy(ctx C) bool {
	return s.a.IsSatisfiedBy(ctx) || s.b.IsSatisfiedBy(ctx)
}

func (s *orSpec[C]) Describe() string {
	return fmt.Sprintf("(%s OR %s)", s.a.Describe(), s.b.Describe())
}

func (s *orSpec[C]) failureReason(ctx C) string {
	if s.IsSatisfiedBy(ctx) {
		return ""
	}
	// Both branches failed, name each failing leaf.
	return FailureReason(s.a, ctx) + "; " + FailureReason(s.b, ctx)
}

// Not creates the negation of a specification.
// Not(Not(s)) collapses structurally to s, so double negation is
// identity both for evaluation and for the rendered description.
func Not[C any](s Specification[C]) Specification[C] {
	if n, ok := s.(*notSpec[C]); ok {
		return n.inner
	}
	return &notSpec[C]{inner: s}
}

type notSpec[C any] struct {
	inner Specification[C]
}

func (s *notSpec[C]) IsSatisfiedBy(ctx C) bool {
	return !s.inner.IsSatisfiedBy(ctx)
}

func (s *notSpec[C]) Describe() string {
	return fmt.Sprintf("NOT %s", s.inner.Describe())
}

func (s *notSpec[C]) failureReason(ctx C) string {
	if s.IsSatisfiedBy(ctx) {
		return ""
	}
	return fmt.Sprintf("%s is satisfied, but its negation is required", s.inner.Describe())
}

// FailureReason explains why a specification rejected the context,
// naming the failing leaf rather than reporting the aggregate result.
// Returns "" when the specification is satisfied.
func FailureReason[C any](s Specification[C], ctx C) string {
	if s.IsSatisfiedBy(ctx) {
		return ""
	}
	if e, ok := s.(explainable[C]); ok {
		return e.failureReason(ctx)
	}
	return fmt.Sprintf("%s is not satisfied", s.Describe())
}
