// internal/models/deeplink.go
package models

// DeepLink pairs an app-scheme URI with its web equivalent. NativeURI is
// empty for web-only services.
type DeepLink struct {
	NativeURI      string `json:"nativeUri,omitempty"`
	WebFallbackURI string `json:"webFallbackUri"`
}

// HasNative reports whether the link carries an app-scheme URI.
func (d DeepLink) HasNative() bool {
	return d.NativeURI != ""
}
