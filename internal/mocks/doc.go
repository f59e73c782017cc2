// Package mocks provides hand-rolled test doubles for the store interfaces
// and the completion client. Each mock exposes overridable function fields
// plus call tracking, so tests can script behavior per case and assert on
// how the code under test drove its collaborators.
package mocks
