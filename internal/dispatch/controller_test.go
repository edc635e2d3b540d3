package dispatch

import (
	"sync"
	"testing"
	"time"

	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/device"
	"concierge-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type navCall struct {
	uri    string
	open   bool
	newTab bool
}

type fakeNavigator struct {
	mu    sync.Mutex
	calls []navCall
}

func (n *fakeNavigator) Navigate(uri string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, navCall{uri: uri})
}

func (n *fakeNavigator) Open(uri string, newTab bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, navCall{uri: uri, open: true, newTab: newTab})
}

func (n *fakeNavigator) Calls() []navCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]navCall, len(n.calls))
	copy(out, n.calls)
	return out
}

var (
	iPhone  = device.Class{IsMobile: true, IsIOS: true}
	android = device.Class{IsMobile: true, IsAndroid: true}
	desktop = device.Class{}
)

var testLink = models.DeepLink{
	NativeURI:      "uber://?action=setPickup",
	WebFallbackURI: "https://m.uber.com/ul/?action=setPickup",
}

func newTestController(nav Navigator, visible VisibilityProbe) *Controller {
	return NewController(Config{
		DefaultVenueID:  "sofi",
		DefaultLanguage: "es",
		FallbackDelay:   20 * time.Millisecond,
	}, nav, visible, nil, logger.NewNoOpLogger())
}

func waitDone(t *testing.T, fb *Fallback) {
	t.Helper()
	select {
	case <-fb.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fallback did not resolve")
	}
}

// ==========================
// Dispatch Tests
// ==========================

func TestDispatch_MobileFiresFallback(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController(nav, nil)

	fb := c.Dispatch(testLink, Options{}, iPhone)
	require.NotNil(t, fb)
	assert.NotEmpty(t, fb.ID())

	calls := nav.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, testLink.NativeURI, calls[0].uri)
	assert.False(t, calls[0].open)

	waitDone(t, fb)
	assert.True(t, fb.Fired())

	calls = nav.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, testLink.WebFallbackURI, calls[1].uri)
}

func TestDispatch_DesktopOpensWeb(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController(nav, nil)

	fb := c.Dispatch(testLink, Options{PreferNewTab: true}, desktop)
	assert.Nil(t, fb)

	calls := nav.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, navCall{uri: testLink.WebFallbackURI, open: true, newTab: true}, calls[0])

	// nil handle behaves as already resolved
	select {
	case <-fb.Done():
	default:
		t.Fatal("nil fallback should be resolved")
	}
	assert.False(t, fb.Cancel())
	assert.False(t, fb.Fired())
	assert.Empty(t, fb.ID())
}

func TestDispatch_WebOnlyLinkOnMobile(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController(nav, nil)

	link := models.DeepLink{WebFallbackURI: "https://translate.google.com/?sl=auto&tl=es&text=hi&op=translate"}
	fb := c.Dispatch(link, Options{PreferNewTab: true}, android)

	assert.Nil(t, fb)
	calls := nav.Calls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].open)
	assert.Equal(t, link.WebFallbackURI, calls[0].uri)
}

func TestDispatch_WebOnlyLinkOnOtherMobile(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController(nav, nil)

	link := models.DeepLink{WebFallbackURI: "https://www.google.com/maps/dir/?api=1&destination=33.9533,-118.3386"}
	fb := c.Dispatch(link, Options{}, device.Class{IsMobile: true})

	assert.Nil(t, fb)
	assert.Equal(t, []navCall{{uri: link.WebFallbackURI}}, nav.Calls())
}

func TestDispatch_Cancel(t *testing.T) {
	nav := &fakeNavigator{}
	c := NewController(Config{FallbackDelay: time.Hour}, nav, nil, nil, logger.NewNoOpLogger())

	fb := c.Dispatch(testLink, Options{}, android)
	require.NotNil(t, fb)

	assert.True(t, fb.Cancel())
	assert.False(t, fb.Cancel(), "second cancel is a no-op")
	waitDone(t, fb)

	assert.False(t, fb.Fired())
	assert.Equal(t, "cancelled", fb.Outcome())
	assert.Len(t, nav.Calls(), 1)
}

func TestDispatch_VisibilityGate(t *testing.T) {
	tests := []struct {
		name      string
		visible   bool
		gate      bool
		wantFired bool
		wantCalls int
	}{
		{name: "hidden page suppresses fallback", visible: false, gate: true, wantFired: false, wantCalls: 1},
		{name: "visible page fires fallback", visible: true, gate: true, wantFired: true, wantCalls: 2},
		{name: "ungated ignores visibility", visible: false, gate: false, wantFired: true, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &fakeNavigator{}
			visible := tt.visible
			c := newTestController(nav, VisibilityFunc(func() bool { return visible }))

			fb := c.Dispatch(testLink, Options{GateOnVisibility: tt.gate}, iPhone)
			waitDone(t, fb)

			assert.Equal(t, tt.wantFired, fb.Fired())
			assert.Len(t, nav.Calls(), tt.wantCalls)
			if !tt.wantFired {
				assert.Equal(t, "suppressed", fb.Outcome())
			}
		})
	}
}

func TestDispatch_IndependentTimers(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController(nav, nil)

	first := c.Dispatch(testLink, Options{}, iPhone)
	second := c.Dispatch(testLink, Options{}, iPhone)
	require.NotEqual(t, first.ID(), second.ID())

	require.True(t, first.Cancel())
	waitDone(t, second)

	assert.False(t, first.Fired())
	assert.True(t, second.Fired())
}

func TestOpenWeb(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController(nav, nil)

	c.OpenWeb("https://example.com")

	assert.Equal(t, []navCall{{uri: "https://example.com", open: true, newTab: true}}, nav.Calls())
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(Config{}, &fakeNavigator{}, nil, nil, logger.NewNoOpLogger())

	assert.Equal(t, DefaultFallbackDelay, c.Config().FallbackDelay)
	assert.Equal(t, "es", c.Config().DefaultLanguage)
	assert.Equal(t, 11, c.Catalog().Len())
}
