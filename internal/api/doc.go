// Package api provides the HTTP handlers for the card catalog and the
// user account endpoints, together with their request/response models
// and the mapping from internal errors to HTTP status codes.
package api
