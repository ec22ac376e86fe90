// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock has optional function fields to override
// behavior per test, with map-backed defaults.
package mocks
