package rule

import (
	"fmt"
	"sort"
)

// Factory constructs a configured rule instance.
type Factory func(Options) Rule

// registry maps variant identifiers to constructors. It is populated from
// the static init calls in this package; there is no dynamic discovery.
var registry = map[string]Factory{}

// Register adds a variant constructor under the given identifier.
// Registering the same identifier twice is a programming error.
func Register(id string, f Factory) {
	if _, dup := registry[id]; dup {
		panic(fmt.Sprintf("rule: duplicate registration of %q", id))
	}
	registry[id] = f
}

// New instantiates the variant registered under id.
func New(id string, opts Options) (Rule, error) {
	f, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("rule: unknown variant %q", id)
	}
	return f(opts), nil
}

// Variants returns all registered identifiers in sorted order.
func Variants() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
