package echo

import (
	"net/http"
	"strings"
)

// headerValueSeparator joins repeated header values, following the
// field combination rule of RFC 9110, section 5.3.
const headerValueSeparator = ", "

// CollectHeaders flattens the request headers into a map of
// canonical header name to value. Repeated headers are joined in
// order of arrival. The Host and Transfer-Encoding headers, which
// net/http moves out of the header map, are restored.
func CollectHeaders(req Request) map[string]string {
	values := make(map[string][]string, len(req.Header)+2)
	for name, vv := range req.Header {
		key := http.CanonicalHeaderKey(name)
		values[key] = append(values[key], vv...)
	}

	if _, ok := values["Host"]; !ok && req.Host != "" {
		values["Host"] = []string{req.Host}
	}

	if _, ok := values["Transfer-Encoding"]; !ok && len(req.TransferEncoding) > 0 {
		values["Transfer-Encoding"] = req.TransferEncoding
	}

	headers := make(map[string]string, len(values))
	for name, vv := range values {
		headers[name] = strings.Join(vv, headerValueSeparator)
	}

	return headers
}
