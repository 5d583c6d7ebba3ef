package resource

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tictail/tictail-go/pkg/tictail"
)

// Parent resolves the URI prefix a collection or resource lives under.
type Parent interface {
	ResolveURI() (string, error)
}

// Prefix is a fixed parent URI.
type Prefix string

// ResolveURI implements Parent.
func (p Prefix) ResolveURI() (string, error) {
	return string(p), nil
}

// JoinURI joins path segments into an absolute URI. Empty segments are
// skipped and leading or trailing slashes on each segment are ignored, so
// JoinURI("", "stores") is "/stores" and JoinURI("/stores/1/", "products")
// is "/stores/1/products".
func JoinURI(segments ...string) string {
	parts := make([]string, 0, len(segments))

	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	return "/" + strings.Join(parts, "/")
}

// PathSegment escapes id for use as a single path segment. Ids that would
// move the request to another path, "." and "..", are rejected.
func PathSegment(id string) (string, error) {
	switch id {
	case "":
		return "", tictail.ErrIDRequired
	case ".", "..":
		return "", fmt.Errorf("%w: %q", tictail.ErrInvalidID, id)
	}

	return url.PathEscape(id), nil
}

// formatPK renders a primary key value as a path segment.
func formatPK(pk interface{}) (string, error) {
	if s, ok := pk.(string); ok {
		return PathSegment(s)
	}

	return PathSegment(fmt.Sprint(pk))
}
