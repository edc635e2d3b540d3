package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	iphoneUA       = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	ipadUA         = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	androidPhoneUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	operaUA        = "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS; Opera Mobi/23.348; U; en) Presto/2.5.25 Version/10.54"
	desktopUA      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	macUA          = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want Class
		kind Kind
	}{
		{"iphone", iphoneUA, Class{IsMobile: true, IsIOS: true}, KindIOS},
		{"ipad", ipadUA, Class{IsMobile: true, IsIOS: true}, KindIOS},
		{"android", androidPhoneUA, Class{IsMobile: true, IsAndroid: true}, KindAndroid},
		{"opera mini", operaUA, Class{IsMobile: true}, KindOtherMobile},
		{"windows desktop", desktopUA, Class{}, KindDesktop},
		{"mac desktop", macUA, Class{}, KindDesktop},
		{"empty", "", Class{}, KindDesktop},
		{"mobile match is case insensitive", "some BLACKBERRY browser", Class{IsMobile: true}, KindOtherMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ua)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kind, got.Kind())
		})
	}
}

func TestClassify_PlatformImpliesMobile(t *testing.T) {
	for _, ua := range []string{iphoneUA, ipadUA, androidPhoneUA, operaUA, desktopUA, macUA, ""} {
		c := Classify(ua)
		if c.IsIOS || c.IsAndroid {
			assert.True(t, c.IsMobile, ua)
		}
		assert.False(t, c.IsIOS && c.IsAndroid, ua)
	}
}
