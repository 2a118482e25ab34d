package rules

import (
	"errors"
	"fmt"
	"slices"

	"github.com/julianstephens/dailyworkout/internal/models"
)

var ErrUnknownRule = errors.New("unknown rule")

// Engine evaluates the enabled rules against the previous day's primary activity.
type Engine struct {
	rules    []Rule
	disabled []string
}

// NewEngine builds an engine with every built-in rule except the disabled ones.
func NewEngine(disabled ...string) (*Engine, error) {
	known := Names()
	e := &Engine{}
	for _, name := range disabled {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		if !slices.Contains(e.disabled, name) {
			e.disabled = append(e.disabled, name)
		}
	}

	for _, r := range Builtin() {
		if !slices.Contains(e.disabled, r.Name) {
			e.rules = append(e.rules, r)
		}
	}
	return e, nil
}

// Default returns an engine with all built-in rules enabled.
func Default() *Engine {
	e, _ := NewEngine()
	return e
}

// Rules returns the enabled rules in evaluation order.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Enabled reports whether the named rule is active.
func (e *Engine) Enabled(name string) bool {
	return slices.ContainsFunc(e.rules, func(r Rule) bool { return r.Name == name })
}

// Disabled returns the names of the rules switched off for this engine.
func (e *Engine) Disabled() []string {
	return slices.Clone(e.disabled)
}

// Suitable reports whether candidate may be scheduled after previous. An empty
// previous workout allows everything. Only the previous primary is consulted.
func (e *Engine) Suitable(candidate models.Activity, previous models.Workout) bool {
	prev, ok := previous.Primary()
	if !ok {
		return true
	}
	for _, r := range e.rules {
		if !r.Allows(candidate, prev) {
			return false
		}
	}
	return true
}

// Violations returns the names of the enabled rules candidate breaks.
func (e *Engine) Violations(candidate models.Activity, previous models.Workout) []string {
	prev, ok := previous.Primary()
	if !ok {
		return nil
	}
	var broken []string
	for _, r := range e.rules {
		if !r.Allows(candidate, prev) {
			broken = append(broken, r.Name)
		}
	}
	return broken
}
