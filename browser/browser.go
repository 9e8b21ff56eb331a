// Package browser hands authorization URLs to the user's external browser.
package browser

import pkgbrowser "github.com/pkg/browser"

// Opener starts an external browser on a URL. Implementations must not block
// waiting for the user to finish authorizing; they only report whether the
// browser could be opened at all.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a plain function to Opener.
type OpenerFunc func(url string) error

// Open calls f.
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// Default opens URLs with the operating system's standard handler.
func Default() Opener {
	return OpenerFunc(pkgbrowser.OpenURL)
}
