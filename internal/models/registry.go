package models

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Handles are the loaded, read-only model handles shared by all pipeline runs.
type Handles struct {
	Classifier Classifier
	Recognizer EntityRecognizer
	Annotator  SkillAnnotator
	// Backend names the loader that produced the handles.
	Backend string

	closer func() error
}

// Loader creates model handles. It is called at most once per successful load.
type Loader func(ctx context.Context) (*Handles, error)

// Registry owns process-wide model handles. Handles are loaded on first use;
// concurrent first callers share one load. A failed load is not cached, so the
// next caller retries.
type Registry struct {
	backend string
	loader  Loader

	mu      sync.Mutex
	handles atomic.Pointer[Handles]
	loads   atomic.Int32
}

// NewRegistry creates a registry that loads handles with loader.
func NewRegistry(backend string, loader Loader) *Registry {
	return &Registry{backend: backend, loader: loader}
}

// NewStaticRegistry wraps already-built handles.
func NewStaticRegistry(h *Handles) *Registry {
	r := &Registry{backend: h.Backend}
	r.handles.Store(h)
	return r
}

// Backend returns the backend name.
func (r *Registry) Backend() string {
	return r.backend
}

// Load returns the shared handles, loading them if needed.
func (r *Registry) Load(ctx context.Context) (*Handles, error) {
	if h := r.handles.Load(); h != nil {
		return h, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h := r.handles.Load(); h != nil {
		return h, nil
	}
	if r.loader == nil {
		return nil, &LoadError{Backend: r.backend, Cause: errors.New("no loader configured")}
	}

	r.loads.Add(1)
	h, err := r.loader(ctx)
	if err != nil {
		return nil, &LoadError{Backend: r.backend, Cause: err}
	}
	if h == nil {
		return nil, &LoadError{Backend: r.backend, Cause: errors.New("loader returned no handles")}
	}
	if h.Backend == "" {
		h.Backend = r.backend
	}
	r.handles.Store(h)
	return h, nil
}

// Loaded reports whether handles are available without loading.
func (r *Registry) Loaded() bool {
	return r.handles.Load() != nil
}

// Classifier returns the shared classifier.
func (r *Registry) Classifier(ctx context.Context) (Classifier, error) {
	h, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if h.Classifier == nil {
		return nil, ErrModelUnavailable
	}
	return h.Classifier, nil
}

// Recognizer returns the shared entity recognizer.
func (r *Registry) Recognizer(ctx context.Context) (EntityRecognizer, error) {
	h, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if h.Recognizer == nil {
		return nil, ErrModelUnavailable
	}
	return h.Recognizer, nil
}

// Annotator returns the shared skill annotator.
func (r *Registry) Annotator(ctx context.Context) (SkillAnnotator, error) {
	h, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if h.Annotator == nil {
		return nil, ErrModelUnavailable
	}
	return h.Annotator, nil
}

// Close releases the loaded handles. The registry can be loaded again afterwards.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.handles.Swap(nil)
	if h == nil || h.closer == nil {
		return nil
	}
	return h.closer()
}
