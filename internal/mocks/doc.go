// Package mocks provides hand-written mock implementations of the store
// interfaces for use in handler and service tests.
package mocks
