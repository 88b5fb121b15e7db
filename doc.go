// Package gaspra computes longest common substrings, diffs, and three-way
// merges over sequences of opaque tokens, built on a linear-time suffix
// automaton. Tokens are anything comparable: runes for character-level
// operation, interned line identifiers for line-level operation.
package gaspra
