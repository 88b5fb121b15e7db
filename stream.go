package gaspra

import (
	"errors"
	"fmt"
)

// ErrConflict is returned when a reconstruction meets a conflict element.
var ErrConflict = errors.New("stream contains conflicts")

// Element is one piece of a change stream: a Run, a Change, or (for merged
// streams) a Conflict.
type Element[T comparable] interface{ isElement() }

// Run is a slice of the reference sequence that survives unchanged.
type Run[T comparable] struct {
	Tokens []T
}

// Change replaces Delete from the reference sequence with Insert. At least
// one side is non-empty: a pure insertion has an empty Delete, a pure
// deletion an empty Insert.
type Change[T comparable] struct {
	Insert []T
	Delete []T
}

// Conflict holds two irreconcilable alternatives for the same region of the
// ancestor. Only Merge produces conflicts.
type Conflict[T comparable] struct {
	Ours   []T
	Theirs []T
}

func (Run[T]) isElement()      {}
func (Change[T]) isElement()   {}
func (Conflict[T]) isElement() {}

// Forward rebuilds the modified sequence from a change stream by
// concatenating runs and insert sides.
func Forward[T comparable](stream []Element[T]) ([]T, error) {
	out := []T{}
	for _, el := range stream {
		switch e := el.(type) {
		case Run[T]:
			out = append(out, e.Tokens...)
		case Change[T]:
			out = append(out, e.Insert...)
		case Conflict[T]:
			return nil, ErrConflict
		default:
			return nil, fmt.Errorf("unknown stream element %T", el)
		}
	}
	return out, nil
}

// Reverse rebuilds the original sequence from a change stream by
// concatenating runs and delete sides.
func Reverse[T comparable](stream []Element[T]) ([]T, error) {
	out := []T{}
	for _, el := range stream {
		switch e := el.(type) {
		case Run[T]:
			out = append(out, e.Tokens...)
		case Change[T]:
			out = append(out, e.Delete...)
		case Conflict[T]:
			return nil, ErrConflict
		default:
			return nil, fmt.Errorf("unknown stream element %T", el)
		}
	}
	return out, nil
}

// HasConflict reports whether the stream contains any conflict element.
func HasConflict[T comparable](stream []Element[T]) bool {
	for _, el := range stream {
		if _, ok := el.(Conflict[T]); ok {
			return true
		}
	}
	return false
}

// coalesce merges adjacent runs and adjacent changes and drops empty
// elements. Conflicts pass through untouched; merge consolidation has
// already fused adjacent ones.
func coalesce[T comparable](stream []Element[T]) []Element[T] {
	out := make([]Element[T], 0, len(stream))
	for _, el := range stream {
		switch e := el.(type) {
		case Run[T]:
			if len(e.Tokens) == 0 {
				continue
			}
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(Run[T]); ok {
					out[len(out)-1] = Run[T]{Tokens: concat(prev.Tokens, e.Tokens)}
					continue
				}
			}
			out = append(out, e)
		case Change[T]:
			if len(e.Insert) == 0 && len(e.Delete) == 0 {
				continue
			}
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(Change[T]); ok {
					out[len(out)-1] = Change[T]{
						Insert: concat(prev.Insert, e.Insert),
						Delete: concat(prev.Delete, e.Delete),
					}
					continue
				}
			}
			out = append(out, e)
		default:
			out = append(out, el)
		}
	}
	return out
}

// concat returns a freshly allocated concatenation so coalesced elements
// never alias the caller's sequences.
func concat[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
