package lcmap

import (
	"context"
)

// LinkHref returns result.link.href of a response.
// result may be a decoded response map or an *Envelope.
func LinkHref(result any) (string, bool) {
	var inner any

	switch r := result.(type) {
	case *Envelope:
		if r == nil {
			return "", false
		}

		inner = r.Result
	case Envelope:
		inner = r.Result
	default:
		inner = field(result, fieldResult)
	}

	href, ok := field(field(inner, fieldLink), fieldHref).(string)
	if !ok || href == "" {
		return "", false
	}

	return href, true
}

// FollowLink issues a GET to the result.link.href of result with opts as the request options.
func (c *ClientImpl) FollowLink(ctx context.Context, lctx *Context, result any, opts RequestOptions) (any, error) {
	href, ok := LinkHref(result)
	if !ok {
		return nil, ErrMissingLink
	}

	return c.Get(ctx, href, Args{
		Options: opts,
		Client:  lctx,
	})
}
