package keymap

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

type entry struct {
	action  Action
	binding key.Binding
}

// Resolver maps key presses to actions. When a key appears in several
// bindings, the first one wins.
type Resolver struct {
	entries []entry
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{entries: make([]entry, 0, len(bindings))}
	for _, b := range bindings {
		r.entries = append(r.entries, entry{
			action:  b.Action,
			binding: key.NewBinding(key.WithKeys(b.Keys...)),
		})
	}
	return r
}

// Resolve returns the action for a key press, or "" if it is not bound.
func (r *Resolver) Resolve(k fmt.Stringer) Action {
	for _, e := range r.entries {
		if key.Matches(k, e.binding) {
			return e.action
		}
	}
	return ""
}

// KeysFor returns the distinct keys bound to an action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, e := range r.entries {
		if e.action != action {
			continue
		}
		for _, k := range e.binding.Keys() {
			if !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
