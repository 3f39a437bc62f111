// Package http implements the REST transport of the feed.
//
// It wires the chi router, the request handlers and the middleware chain:
// trace ids, access logging, panic recovery, CORS, request timeouts and the
// bearer-token gate in front of the post routes. Handlers decode JSON,
// delegate to the service layer and answer with a `{"msg": ...}` body on
// every failure.
package http
