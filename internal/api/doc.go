// Package api contains the HTTP handlers for the account and catalog
// endpoints, request/response models, and the error-to-status mapping.
package api
