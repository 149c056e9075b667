package optix

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry owns the registered options. Options live in a single arena
// slice indexed by uid; a name index in registration order maps each
// canonical (prefix, name) pair — including aliases — to its overload
// bucket of uids.
type Registry struct {
	opts  []*Option
	names *orderedmap.OrderedMap
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: orderedmap.New(),
	}
}

func nameKey(prefix, name string) string {
	return prefix + name
}

// Add registers an option, assigns its uid and returns it. Name and alias
// lookups preserve registration order, which is also the order overloads
// are tried in.
func (r *Registry) Add(opt *Option) Uid {
	opt.uid = Uid(len(r.opts))
	opt.matchedIndex = -1
	r.opts = append(r.opts, opt)

	r.indexName(nameKey(opt.prefix, opt.name), opt.uid)
	for _, alias := range opt.aliases {
		r.indexName(nameKey(alias.Prefix, alias.Name), opt.uid)
	}
	return opt.uid
}

func (r *Registry) indexName(key string, uid Uid) {
	if bucket, ok := r.names.Get(key); ok {
		r.names.Set(key, append(bucket.([]Uid), uid))
		return
	}
	r.names.Set(key, []Uid{uid})
}

// Opt returns the option for a uid, or nil.
func (r *Registry) Opt(uid Uid) *Option {
	if uid < 0 || int(uid) >= len(r.opts) {
		return nil
	}
	return r.opts[uid]
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.opts)
}

// Find returns the overload bucket for a (prefix, name) pair, in
// registration order. Aliases resolve like primary names.
func (r *Registry) Find(prefix, name string) []*Option {
	bucket, ok := r.names.Get(nameKey(prefix, name))
	if !ok {
		return nil
	}
	uids := bucket.([]Uid)
	opts := make([]*Option, 0, len(uids))
	for _, uid := range uids {
		opts = append(opts, r.opts[uid])
	}
	return opts
}

// HasName reports whether any option answers to the given (prefix, name).
func (r *Registry) HasName(prefix, name string) bool {
	_, ok := r.names.Get(nameKey(prefix, name))
	return ok
}

// ForEach visits options in registration order until the callback returns
// false.
func (r *Registry) ForEach(fn func(*Option) bool) {
	for _, opt := range r.opts {
		if !fn(opt) {
			return
		}
	}
}

// Names visits every indexed (prefix+name) key in registration order.
func (r *Registry) Names(fn func(key string, uids []Uid) bool) {
	for pair := r.names.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key.(string), pair.Value.([]Uid)) {
			return
		}
	}
}

// resetRun clears per-run state on every option.
func (r *Registry) resetRun() {
	for _, opt := range r.opts {
		opt.resetRun()
	}
}
