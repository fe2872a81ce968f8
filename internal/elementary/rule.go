package elementary

import (
	"fmt"

	"eca/internal/core"
)

// Patterns lists the eight neighbourhoods in rule-code bit order, most
// significant bit first.
var Patterns = [8]string{"111", "110", "101", "100", "011", "010", "001", "000"}

// RuleTable maps each three-cell neighbourhood to the next state of its centre
// cell. The zero value is rule 0.
type RuleTable struct {
	code uint8
	out  [8]core.Cell // indexed by left<<2 | center<<1 | right
}

// Entry pairs a neighbourhood pattern with its output state.
type Entry struct {
	Pattern string
	Next    core.Cell
}

// NewRuleTable derives the table for a Wolfram rule code in [0,255].
func NewRuleTable(code int) (RuleTable, error) {
	if code < 0 || code > 255 {
		return RuleTable{}, errorf(ErrInvalidRule, "rule %d outside [0,255]", code)
	}
	t := RuleTable{code: uint8(code)}
	bits := fmt.Sprintf("%08b", code)
	for i, pattern := range Patterns {
		idx, _ := patternIndex(pattern)
		t.out[idx] = bits[i] - '0'
	}
	return t, nil
}

// Code returns the rule code the table was built from.
func (t RuleTable) Code() int { return int(t.code) }

// Len returns the number of entries, always 8.
func (t RuleTable) Len() int { return len(t.out) }

// Lookup resolves a three-symbol pattern such as "110".
func (t RuleTable) Lookup(pattern string) (core.Cell, error) {
	idx, ok := patternIndex(pattern)
	if !ok {
		return 0, errorf(ErrInvalidNeighborhood, "pattern %q", pattern)
	}
	return t.out[idx], nil
}

// Apply resolves the neighbourhood (left, center, right).
func (t RuleTable) Apply(left, center, right core.Cell) (core.Cell, error) {
	if left > 1 || center > 1 || right > 1 {
		return 0, errorf(ErrInvalidNeighborhood, "cells (%d,%d,%d)", left, center, right)
	}
	return t.out[left<<2|center<<1|right], nil
}

// Entries returns the table in rule-code order, pattern "111" first.
func (t RuleTable) Entries() []Entry {
	entries := make([]Entry, 0, len(Patterns))
	for _, pattern := range Patterns {
		next, _ := t.Lookup(pattern)
		entries = append(entries, Entry{Pattern: pattern, Next: next})
	}
	return entries
}

func patternIndex(pattern string) (int, bool) {
	if len(pattern) != 3 {
		return 0, false
	}
	idx := 0
	for i := 0; i < 3; i++ {
		switch pattern[i] {
		case '0':
			idx <<= 1
		case '1':
			idx = idx<<1 | 1
		default:
			return 0, false
		}
	}
	return idx, true
}
