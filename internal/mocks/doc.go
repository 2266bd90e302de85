// Package mocks provides in-memory fakes of the external collaborators
// (remote store, session gate) for tests. Fakes expose function fields so
// individual calls can be overridden per test.
package mocks
