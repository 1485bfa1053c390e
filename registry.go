package typf

import (
	"runtime"
	"sort"
	"sync"
)

// ShaperFactory builds a Shaper instance. Grounded on surface/registry.go's
// SurfaceFactory idiom, generalized to the shaper role.
type ShaperFactory func() (Shaper, error)

// RendererFactory builds a Renderer instance.
type RendererFactory func() (Renderer, error)

type shaperEntry struct {
	name      string
	priority  int
	factory   ShaperFactory
	available func() bool
}

type rendererEntry struct {
	name      string
	priority  int
	factory   RendererFactory
	available func() bool
}

// Registry enumerates available shaper and renderer backends at
// build-configuration time and picks defaults per spec §4.6. The package
// variable registry below is the process-wide instance; this file's init()
// registers the built-in backends into it.
type Registry struct {
	mu        sync.RWMutex
	shapers   map[string]*shaperEntry
	renderers map[string]*rendererEntry
}

var registry = &Registry{
	shapers:   make(map[string]*shaperEntry),
	renderers: make(map[string]*rendererEntry),
}

// RegisterShaper adds a shaper backend to the process-wide registry.
// Registering a name that already exists replaces the previous entry. A nil
// available func means "always available".
func RegisterShaper(name string, priority int, factory ShaperFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.shapers[name] = &shaperEntry{name: name, priority: priority, factory: factory, available: available}
}

// RegisterRenderer adds a renderer backend to the process-wide registry.
func RegisterRenderer(name string, priority int, factory RendererFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.renderers[name] = &rendererEntry{name: name, priority: priority, factory: factory, available: available}
}

// ListShapers returns registered shaper names sorted by priority (highest
// first).
func ListShapers() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.shapers))
	for n := range registry.shapers {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return registry.shapers[names[i]].priority > registry.shapers[names[j]].priority
	})
	return names
}

// ListRenderers returns registered renderer names sorted by priority
// (highest first).
func ListRenderers() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.renderers))
	for n := range registry.renderers {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return registry.renderers[names[i]].priority > registry.renderers[names[j]].priority
	})
	return names
}

// NewShaperByName constructs a named shaper backend, per spec §4.6's
// named-selection function. Returns ErrNotCompiled if the name was never
// registered (platform-native backends on the wrong platform, for example),
// and the same error if registered but its availability check fails: in
// both cases a *ShapingError of kind ShapingBackendInternal wrapping
// ErrNotCompiled.
func NewShaperByName(name string) (Shaper, error) {
	registry.mu.RLock()
	entry, ok := registry.shapers[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, &ShapingError{Kind: ShapingBackendInternal, Backend: name, Err: ErrNotCompiled}
	}
	if !entry.available() {
		return nil, &ShapingError{Kind: ShapingBackendInternal, Backend: name, Err: ErrNotCompiled}
	}
	return entry.factory()
}

// NewRendererByName constructs a named renderer backend.
func NewRendererByName(name string) (Renderer, error) {
	registry.mu.RLock()
	entry, ok := registry.renderers[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, &RenderError{Kind: RenderBackendInternal, Backend: name, Err: ErrNotCompiled}
	}
	if !entry.available() {
		return nil, &RenderError{Kind: RenderBackendInternal, Backend: name, Err: ErrNotCompiled}
	}
	return entry.factory()
}

// platformNativeShaperName returns the platform-native shaper identifier for
// the running GOOS, or "" if this platform has no native backend.
func platformNativeShaperName() string {
	switch runtime.GOOS {
	case "darwin":
		return "platform-mac"
	case "windows":
		return "platform-win"
	default:
		return ""
	}
}

func platformNativeRendererName() string {
	return platformNativeShaperName()
}

// DefaultShaper implements spec §4.6's default-selection policy for shapers:
// prefer a platform-native backend when available, otherwise fall back to
// the Unicode-aware cross-platform shaper.
func DefaultShaper() (Shaper, error) {
	if name := platformNativeShaperName(); name != "" {
		if s, err := NewShaperByName(name); err == nil {
			return s, nil
		}
	}
	if s, err := NewShaperByName("unicode-aware"); err == nil {
		return s, nil
	}
	return nil, &ShapingError{Kind: ShapingBackendInternal, Err: ErrNotCompiled}
}

// DefaultRenderer implements spec §4.6's default-selection policy for
// renderers: prefer a platform-native (graphics-library-backed) renderer,
// otherwise fall back to the reference pure-outline renderer.
func DefaultRenderer() (Renderer, error) {
	if name := platformNativeRendererName(); name != "" {
		if r, err := NewRendererByName(name); err == nil {
			return r, nil
		}
	}
	if r, err := NewRendererByName("reference-outline"); err == nil {
		return r, nil
	}
	return nil, &RenderError{Kind: RenderBackendInternal, Err: ErrNotCompiled}
}

func init() {
	RegisterShaper("reference", 10, func() (Shaper, error) {
		return NewReferenceShaper(), nil
	}, nil)
	RegisterShaper("unicode-aware", 50, func() (Shaper, error) {
		return NewUnicodeShaper(), nil
	}, nil)

	RegisterRenderer("reference-outline", 10, func() (Renderer, error) {
		return NewOutlineRenderer(), nil
	}, nil)
	RegisterRenderer("high-quality", 30, func() (Renderer, error) {
		return NewSupersampleRenderer(), nil
	}, nil)
	RegisterRenderer("vector-256x", 20, func() (Renderer, error) {
		return NewVectorRenderer(), nil
	}, nil)
}
