package keymap

import "slices"

// Resolver maps key strings to actions. The same key may be bound in
// several contexts; the caller names the contexts that are active.
type Resolver struct {
	bindings map[string]map[string]Action // context -> key -> action
	byAction map[Action][]string          // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		ctx := r.bindings[b.Context]
		if ctx == nil {
			ctx = make(map[string]Action)
			r.bindings[b.Context] = ctx
		}
		for _, key := range b.Keys {
			ctx[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		slices.Sort(keys)
		r.byAction[action] = slices.Compact(keys)
	}
	return r
}

// Resolve returns the action bound to key in the first of contexts that
// binds it, or empty string if none does.
func (r *Resolver) Resolve(key string, contexts ...string) Action {
	for _, c := range contexts {
		if a, ok := r.bindings[c][key]; ok {
			return a
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action, sorted.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
