// Package client is a small HTTP client for the movies screen-state API.
// Every call decodes the {status, message, data} envelope and returns the
// server's message as an *APIError on non-2xx responses.
package client
