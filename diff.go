package gaspra

// Diff decomposes original and modified into a change stream: runs of
// original that survive unchanged, interleaved with (insert, delete) pairs.
// Concatenating runs and insert sides reproduces modified; runs and delete
// sides reproduce original. No two adjacent elements are both runs or both
// changes.
func Diff[T comparable](original, modified []T) ([]Element[T], error) {
	if len(original) > MaxSequenceLen || len(modified) > MaxSequenceLen {
		return nil, ErrInputTooLarge
	}
	return coalesce(diffStream(original, modified)), nil
}

// diffTask is one pending unit of the divide-and-conquer: either a pair of
// slices still to be compared, or a run already known to be common.
type diffTask struct {
	emitRun  bool
	aLo, aHi int
	bLo, bHi int
}

// diffStream splits the two sequences around their longest common substring
// and recurses on both sides, walking original strictly left to right. The
// recursion runs on an explicit work stack so adversarial inputs cannot
// overflow the call stack.
func diffStream[T comparable](original, modified []T) []Element[T] {
	var out []Element[T]

	stack := []diffTask{{aLo: 0, aHi: len(original), bLo: 0, bHi: len(modified)}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.emitRun {
			out = append(out, Run[T]{Tokens: original[t.aLo:t.aHi]})
			continue
		}

		a := original[t.aLo:t.aHi]
		b := modified[t.bLo:t.bHi]
		if len(a) == 0 && len(b) == 0 {
			continue
		}

		sa, sb, l := 0, 0, 0
		if len(a) > 0 && len(b) > 0 {
			sa, sb, l = lcs(a, b)
		}
		if l == 0 {
			out = append(out, Change[T]{Insert: b, Delete: a})
			continue
		}
		sa += t.aLo
		sb += t.bLo

		// Left side first; the run and the right side go deeper so the
		// stack pops them in emission order.
		stack = append(stack,
			diffTask{aLo: sa + l, aHi: t.aHi, bLo: sb + l, bHi: t.bHi},
			diffTask{emitRun: true, aLo: sa, aHi: sa + l},
			diffTask{aLo: t.aLo, aHi: sa, bLo: t.bLo, bHi: sb},
		)
	}
	return out
}
