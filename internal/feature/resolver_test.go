package feature

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name     string
	internal map[string]bool
	calls    []string
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) CheckInternalFeature(name string) bool {
	s.calls = append(s.calls, name)
	return s.internal[name]
}

type customSet map[string]bool

func (c customSet) HasCustomFeature(name string) bool { return c[name] }

func currentArchToken(t *testing.T) string {
	t.Helper()
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "arm64"
	case "arm":
		return "arm"
	}
	t.Skipf("no architecture token for GOARCH=%s", runtime.GOARCH)
	return ""
}

func TestResolver_BackendNameWins(t *testing.T) {
	src := &stubSource{name: "LinuxBSD"}
	r := NewResolver(src)

	tier, ok := r.Resolve("LinuxBSD")
	assert.True(t, ok)
	assert.Equal(t, TierBackend, tier)
	assert.Empty(t, src.calls, "internal check must not run once an earlier tier matched")
}

func TestResolver_BuildTokensAreExclusive(t *testing.T) {
	r := NewResolver(nil)

	assert.True(t, r.Has(buildToken))
	assert.True(t, r.Has(targetToken))

	other := map[string]string{"debug": "release", "release": "debug"}[buildToken]
	assert.False(t, r.Has(other))
	otherTarget := map[string]string{"editor": "standalone", "standalone": "editor"}[targetToken]
	assert.False(t, r.Has(otherTarget))
}

func TestResolver_PointerWidth(t *testing.T) {
	r := NewResolver(nil)
	want := "64"
	if ^uint(0)>>32 == 0 {
		want = "32"
	}
	tier, ok := r.Resolve(want)
	assert.True(t, ok)
	assert.Equal(t, TierPointerWidth, tier)
}

func TestResolver_ArchitectureBeatsProject(t *testing.T) {
	arch := currentArchToken(t)
	called := false
	r := NewResolver(&stubSource{name: "Test"})
	require.NoError(t, r.SetCallback(func(string) bool {
		called = true
		return true
	}))
	r.SetProject(customSet{arch: true})

	tier, ok := r.Resolve(arch)
	assert.True(t, ok)
	assert.Equal(t, TierArchitecture, tier)
	assert.False(t, called, "callback must not be consulted after an architecture match")
}

func TestResolver_LaterTiers(t *testing.T) {
	src := &stubSource{name: "Test", internal: map[string]bool{"s3tc": true}}
	r := NewResolver(src)
	require.NoError(t, r.SetCallback(func(name string) bool { return name == "server" }))
	r.SetProject(customSet{"demo_build": true, "server": true})

	tests := []struct {
		name string
		tier Tier
		ok   bool
	}{
		{"s3tc", TierInternal, true},
		{"server", TierCallback, true},
		{"demo_build", TierProject, true},
		{"Demo_Build", TierNone, false},
		{"", TierNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := r.Resolve(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestResolver_CallbackRegisteredOnce(t *testing.T) {
	r := NewResolver(nil)
	require.NoError(t, r.SetCallback(func(name string) bool { return name == "first" }))

	err := r.SetCallback(func(string) bool { return true })
	assert.ErrorIs(t, err, ErrCallbackAlreadySet)
	assert.True(t, r.Has("first"))
	assert.False(t, r.Has("second"), "second callback must be ignored")
}

func TestResolver_StableAnswers(t *testing.T) {
	r := NewResolver(&stubSource{name: "Test"})
	for i := 0; i < 5; i++ {
		assert.True(t, r.Has("Test"))
		assert.False(t, r.Has("nope"))
	}
}

func TestResolver_ProjectChangesAreObserved(t *testing.T) {
	r := NewResolver(nil)
	assert.False(t, r.Has("mobile"))

	r.SetProject(customSet{"mobile": true})
	assert.True(t, r.Has("mobile"))

	r.SetProject(nil)
	assert.False(t, r.Has("mobile"))
}

func TestResolver_Tokens(t *testing.T) {
	r := NewResolver(&stubSource{name: "LinuxBSD"})
	tokens := r.Tokens()

	require.NotEmpty(t, tokens)
	assert.Equal(t, "LinuxBSD", tokens[0])
	assert.Contains(t, tokens, buildToken)
	assert.Contains(t, tokens, targetToken)
	assert.Contains(t, tokens, pointerToken)
	for _, tok := range tokens {
		assert.True(t, r.Has(tok), "listed token %q must resolve", tok)
	}
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "architecture", TierArchitecture.String())
	assert.Equal(t, "tier(99)", Tier(99).String())
}
