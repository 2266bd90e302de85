// Package service implements the tracker operations as named mutations on
// a sync engine. Each operation validates its inputs through the domain
// constructors, applies synchronously, and returns the created entity;
// persistence happens in the background.
package service
