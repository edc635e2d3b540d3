// internal/deeplink/encode.go
package deeplink

import (
	"net/url"
	"strconv"
	"strings"
)

// url.QueryEscape writes spaces as '+' and escapes !'()*, all of which
// encodeURIComponent keeps as-is.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s the way browsers encode a single URI
// component: spaces become %20 and the marks !'()* stay literal.
func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func latLng(lat, lng float64) string {
	return formatCoord(lat) + "," + formatCoord(lng)
}
