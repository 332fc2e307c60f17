// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as a stateless adapter between external
// clients and the item store, translating HTTP concerns to store operations
// and store errors back to status codes.
package api
