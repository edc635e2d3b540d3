// internal/device/device.go
package device

import "regexp"

var (
	mobileUA  = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)
	iosUA     = regexp.MustCompile(`iPad|iPhone|iPod`)
	androidUA = regexp.MustCompile(`Android`)
)

// Kind is the coarse platform bucket used to pick a link shape.
type Kind string

const (
	KindIOS         Kind = "ios"
	KindAndroid     Kind = "android"
	KindOtherMobile Kind = "other-mobile"
	KindDesktop     Kind = "desktop"
)

// Class describes the requesting device. The zero value is a desktop.
type Class struct {
	IsMobile  bool `json:"isMobile"`
	IsIOS     bool `json:"isIOS"`
	IsAndroid bool `json:"isAndroid"`
}

// Classify inspects a user-agent string. An empty string yields the zero
// Class.
func Classify(userAgent string) Class {
	if userAgent == "" {
		return Class{}
	}
	return Class{
		IsMobile:  mobileUA.MatchString(userAgent),
		IsIOS:     iosUA.MatchString(userAgent),
		IsAndroid: androidUA.MatchString(userAgent),
	}
}

func (c Class) Kind() Kind {
	switch {
	case c.IsIOS:
		return KindIOS
	case c.IsAndroid:
		return KindAndroid
	case c.IsMobile:
		return KindOtherMobile
	default:
		return KindDesktop
	}
}
