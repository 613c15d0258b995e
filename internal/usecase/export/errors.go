package export

import "errors"

var (
	// ErrUnsupportedLocale is returned for locales without a catalog
	ErrUnsupportedLocale = errors.New("unsupported export locale")
)
