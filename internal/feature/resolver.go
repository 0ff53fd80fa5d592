// Package feature resolves feature tokens such as "debug", "64" or "x86_64".
package feature

import (
	"errors"
	"strconv"
	"sync"
	"unsafe"
)

// ErrCallbackAlreadySet is returned when a second feature callback is
// registered on the same resolver.
var ErrCallbackAlreadySet = errors.New("feature callback already registered")

// Source is the back-end side of resolution: its own name and its internal
// capability check.
type Source interface {
	Name() string
	CheckInternalFeature(name string) bool
}

// CustomFeatureSet is the project-level set of user-defined feature tokens.
type CustomFeatureSet interface {
	HasCustomFeature(name string) bool
}

// Callback is an externally registered feature predicate.
type Callback func(name string) bool

// Tier identifies which clause of the precedence chain answered a query.
type Tier int

const (
	TierNone Tier = iota
	TierBackend
	TierBuild
	TierPointerWidth
	TierArchitecture
	TierInternal
	TierCallback
	TierProject
)

var tierNames = map[Tier]string{
	TierNone:         "none",
	TierBackend:      "backend",
	TierBuild:        "build",
	TierPointerWidth: "pointer-width",
	TierArchitecture: "architecture",
	TierInternal:     "internal",
	TierCallback:     "callback",
	TierProject:      "project",
}

func (t Tier) String() string {
	if n, ok := tierNames[t]; ok {
		return n
	}
	return "tier(" + strconv.Itoa(int(t)) + ")"
}

// pointerToken is "64" or "32" depending on the native pointer size.
var pointerToken = strconv.Itoa(int(unsafe.Sizeof(uintptr(0))) * 8)

// Resolver answers "is capability X supported" by walking a fixed
// precedence chain:
//
//  1. the back-end's own name
//  2. build tokens ("debug"/"release", "editor"/"standalone")
//  3. pointer width ("64"/"32")
//  4. architecture tokens compiled for GOARCH
//  5. the back-end's internal check
//  6. the registered callback
//  7. the project's custom features
//
// The first matching clause wins. Nothing is cached.
type Resolver struct {
	source Source

	mu       sync.RWMutex
	callback Callback
	project  CustomFeatureSet
}

// NewResolver creates a resolver over source. source may be nil, in which
// case tiers 1 and 5 never match.
func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// SetCallback registers the external predicate. It may be registered once;
// later registrations return ErrCallbackAlreadySet and are ignored.
func (r *Resolver) SetCallback(cb Callback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.callback != nil {
		return ErrCallbackAlreadySet
	}
	r.callback = cb
	return nil
}

// SetProject attaches the project custom feature set. Passing nil detaches it.
func (r *Resolver) SetProject(p CustomFeatureSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.project = p
}

// Has reports whether name is a supported feature.
func (r *Resolver) Has(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// Resolve reports whether name is supported and which tier matched.
func (r *Resolver) Resolve(name string) (Tier, bool) {
	if r.source != nil && name == r.source.Name() {
		return TierBackend, true
	}
	if name == buildToken || name == targetToken {
		return TierBuild, true
	}
	if name == pointerToken {
		return TierPointerWidth, true
	}
	for _, tok := range archTokens {
		if name == tok {
			return TierArchitecture, true
		}
	}
	if r.source != nil && r.source.CheckInternalFeature(name) {
		return TierInternal, true
	}

	r.mu.RLock()
	cb, project := r.callback, r.project
	r.mu.RUnlock()

	if cb != nil && cb(name) {
		return TierCallback, true
	}
	if project != nil && project.HasCustomFeature(name) {
		return TierProject, true
	}
	return TierNone, false
}

// Tokens lists the tokens known without consulting the back-end's internal
// check, the callback or the project: the back-end name followed by the
// compiled build, pointer-width and architecture tokens.
func (r *Resolver) Tokens() []string {
	var tokens []string
	if r.source != nil {
		tokens = append(tokens, r.source.Name())
	}
	return append(tokens, CompiledTokens()...)
}

// CompiledTokens returns the tokens fixed at build time.
func CompiledTokens() []string {
	tokens := []string{buildToken, targetToken, pointerToken}
	return append(tokens, archTokens...)
}
