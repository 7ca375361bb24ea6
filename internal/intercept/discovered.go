package intercept

import "sort"

// Discovered is the set of tool names surfaced to the model via search,
// scoped to one conversation. It only grows during sends; Reset is the
// single way to clear it. Not safe for two concurrent sends on the same
// instance.
type Discovered struct {
	names map[string]struct{}
}

func NewDiscovered() *Discovered {
	return &Discovered{names: make(map[string]struct{})}
}

func (d *Discovered) Add(names ...string) {
	for _, name := range names {
		d.names[name] = struct{}{}
	}
}

// Names returns the current contents sorted ascending by name, the order
// used for outbound tool lists.
func (d *Discovered) Names() []string {
	out := make([]string, 0, len(d.names))
	for name := range d.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (d *Discovered) Len() int {
	return len(d.names)
}

func (d *Discovered) Reset() {
	d.names = make(map[string]struct{})
}
