package api

import (
	"net/url"
	"strings"
)

// ObjectPath joins an object path onto an endpoint prefix. The object's
// leading slash is dropped, then the whole path gets minimal RFC 3986
// escaping: slashes and ordinary name characters stay literal, while
// spaces, question marks and friends are escaped so they cannot leak into
// the query or fragment.
func ObjectPath(prefix, path string) string {
	u := url.URL{Path: prefix + "/" + strings.TrimPrefix(path, "/")}
	return u.EscapedPath()
}
