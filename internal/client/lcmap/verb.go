package lcmap

import (
	"fmt"
	"net/http"
	"strings"
)

// Verb names an HTTP call the client can dispatch.
type Verb string

// Supported verbs.
const (
	VerbGet     Verb = "get"
	VerbHead    Verb = "head"
	VerbPost    Verb = "post"
	VerbPut     Verb = "put"
	VerbDelete  Verb = "delete"
	VerbOptions Verb = "options"
	VerbCopy    Verb = "copy"
	VerbMove    Verb = "move"
	VerbPatch   Verb = "patch"
)

// WebDAV methods without a net/http constant.
const (
	methodCopy = "COPY"
	methodMove = "MOVE"
)

var verbMethods = map[Verb]string{
	VerbGet:     http.MethodGet,
	VerbHead:    http.MethodHead,
	VerbPost:    http.MethodPost,
	VerbPut:     http.MethodPut,
	VerbDelete:  http.MethodDelete,
	VerbOptions: http.MethodOptions,
	VerbCopy:    methodCopy,
	VerbMove:    methodMove,
	VerbPatch:   http.MethodPatch,
}

// Verbs lists every supported verb in a stable order.
func Verbs() []Verb {
	return []Verb{
		VerbGet, VerbHead, VerbPost, VerbPut, VerbDelete,
		VerbOptions, VerbCopy, VerbMove, VerbPatch,
	}
}

// ParseVerb converts a case-insensitive verb name into a Verb.
func ParseVerb(s string) (Verb, error) {
	verb := Verb(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := verbMethods[verb]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVerb, s)
	}

	return verb, nil
}

// Method returns the HTTP method of v.
func (v Verb) Method() (string, error) {
	method, ok := verbMethods[v]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVerb, string(v))
	}

	return method, nil
}
