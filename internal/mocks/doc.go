// Package mocks provides hand-written mock implementations of the
// store and service interfaces for use in handler and router tests.
// Each mock exposes function fields to override behavior per test and
// a map-backed default implementation for the common cases.
package mocks
