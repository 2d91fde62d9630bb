package theme

import (
	"errors"
	"net/http"
	"strings"
)

// HintHeader is the user-agent client hint carrying the colour scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

var errNoHint = errors.New("no color scheme hint")

// ClientHint reads the colour scheme hint of r. The hint is only sent by
// browsers that were asked for it via Accept-CH.
func ClientHint(r *http.Request) SystemPreference {
	return func() (bool, error) {
		v := strings.Trim(strings.TrimSpace(r.Header.Get(HintHeader)), `"`)
		if v == "" {
			return false, errNoHint
		}
		return strings.EqualFold(v, Dark), nil
	}
}
