// Package http provides the RoundTripper chain used to talk to the LCMAP API:
// request/response logging with token redaction, User-Agent and request id injection,
// and Prometheus request metrics. NewClient assembles the chain into an *http.Client.
package http
