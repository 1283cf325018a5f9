package domain

import "strings"

// QueryParam - single query parameter; order is significant for signing
type QueryParam struct {
	Key   string
	Value string
}

// SignedRequest - request path and ordered query with the signature that covers them.
// Built for one call and discarded.
type SignedRequest struct {
	Path      string
	Query     []QueryParam
	Signature string
}

// PathWithQuery renders path?k=v&... in parameter order, without the signature
func (r SignedRequest) PathWithQuery() string {
	return RenderPathWithQuery(r.Path, r.Query)
}

// URL renders the full request URL against baseURL with the signature appended last
func (r SignedRequest) URL(baseURL string) string {
	sep := "&"
	if len(r.Query) == 0 {
		sep = "?"
	}
	return strings.TrimRight(baseURL, "/") + r.PathWithQuery() + sep + "signature=" + r.Signature
}

// RenderPathWithQuery joins path and ordered query parameters
func RenderPathWithQuery(path string, query []QueryParam) string {
	var b strings.Builder
	b.WriteString(path)
	for i, p := range query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
