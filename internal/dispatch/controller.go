// internal/dispatch/controller.go
package dispatch

import (
	"time"

	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/common/metrics"
	"concierge-workers/internal/device"
	"concierge-workers/internal/models"
	"concierge-workers/internal/venue"

	"github.com/google/uuid"
)

// DefaultFallbackDelay is how long a mobile dispatch waits for the native
// app before navigating to the web fallback.
const DefaultFallbackDelay = 1500 * time.Millisecond

// Navigator performs the side effects of a dispatch.
type Navigator interface {
	// Navigate replaces the current context with uri.
	Navigate(uri string)
	// Open loads uri in a separate browsing context.
	Open(uri string, newTab bool)
}

// VisibilityProbe reports whether the page is still in the foreground. A
// hidden page means the native app took over.
type VisibilityProbe interface {
	Visible() bool
}

// VisibilityFunc adapts a function to VisibilityProbe.
type VisibilityFunc func() bool

func (f VisibilityFunc) Visible() bool { return f() }

type Config struct {
	DefaultVenueID  string
	DefaultLanguage string
	FallbackDelay   time.Duration
	// SameTab keeps desktop web links in the current browsing context.
	SameTab         bool
}

// Options tune a single dispatch.
type Options struct {
	PreferNewTab     bool `json:"newTab"`
	GateOnVisibility bool `json:"gateOnVisibility"`
}

// Controller turns deep links into navigation. It holds no per-dispatch
// state; each mobile dispatch owns one timer.
type Controller struct {
	cfg        Config
	nav        Navigator
	visibility VisibilityProbe
	catalog    *venue.Catalog
	logger     logger.Logger
}

func NewController(cfg Config, nav Navigator, visibility VisibilityProbe, catalog *venue.Catalog, log logger.Logger) *Controller {
	if cfg.FallbackDelay <= 0 {
		cfg.FallbackDelay = DefaultFallbackDelay
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "es"
	}
	if catalog == nil {
		catalog = venue.DefaultCatalog()
	}
	return &Controller{
		cfg:        cfg,
		nav:        nav,
		visibility: visibility,
		catalog:    catalog,
		logger:     log.WithFields(map[string]interface{}{"component": "dispatch"}),
	}
}

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Catalog() *venue.Catalog { return c.catalog }

// Dispatch opens link for the given device. Mobile devices navigate to the
// native URI at once and get a web fallback after the configured delay.
// Everything else gets the web URI directly and a nil *Fallback; a mobile
// device replaces the current page unless opts.PreferNewTab is set.
func (c *Controller) Dispatch(link models.DeepLink, opts Options, class device.Class) *Fallback {
	return c.dispatch(uuid.NewString(), link, opts, class)
}

func (c *Controller) dispatch(id string, link models.DeepLink, opts Options, class device.Class) *Fallback {
	if class.IsMobile && !link.HasNative() && !opts.PreferNewTab {
		c.logger.Debug("navigating to web link", map[string]interface{}{"dispatchId": id, "uri": link.WebFallbackURI})
		c.nav.Navigate(link.WebFallbackURI)
		return nil
	}
	if !class.IsMobile || !link.HasNative() {
		c.logger.Debug("opening web link", map[string]interface{}{"dispatchId": id, "uri": link.WebFallbackURI})
		c.nav.Open(link.WebFallbackURI, opts.PreferNewTab)
		return nil
	}

	c.logger.Debug("navigating to native link", map[string]interface{}{
		"dispatchId": id,
		"uri":        link.NativeURI,
		"platform":   string(class.Kind()),
	})
	c.nav.Navigate(link.NativeURI)

	fb := newFallback(id)
	web := link.WebFallbackURI
	fb.timer = time.AfterFunc(c.cfg.FallbackDelay, func() {
		if opts.GateOnVisibility && c.visibility != nil && !c.visibility.Visible() {
			if fb.settle(metrics.FallbackSuppressed) {
				c.logger.Debug("fallback suppressed, app in foreground", map[string]interface{}{"dispatchId": id})
			}
			return
		}
		if fb.settle(metrics.FallbackFired) {
			c.nav.Navigate(web)
		}
	})
	return fb
}

// OpenWeb opens uri in a new browsing context on every device.
func (c *Controller) OpenWeb(uri string) {
	c.nav.Open(uri, true)
}
