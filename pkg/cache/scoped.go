package cache

// ScopedKeyer wraps a Keyer and prefixes every generated key. Scopes keep
// key spaces apart when deployments share one backend, for example a single
// Redis instance serving several server versions:
//
//	keyer := cache.NewScopedKeyer(nil, "keymapviz:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prefixes all keys built by inner.
// A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// FetchKey generates a prefixed key for remote document caching.
func (k *ScopedKeyer) FetchKey(namespace, url string) string {
	return k.prefix + k.inner.FetchKey(namespace, url)
}

// RenderKey generates a prefixed key for rendered diagram text.
func (k *ScopedKeyer) RenderKey(keyboard string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(keyboard, opts)
}

// GraphKey generates a prefixed key for rendered layer graphs.
func (k *ScopedKeyer) GraphKey(keyboard string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(keyboard, opts)
}
