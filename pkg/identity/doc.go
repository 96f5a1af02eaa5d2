// Package identity carries the authenticated identity of a request.
//
// The session middleware validates the bearer token and stores an Identity
// in the request context; handlers retrieve it with Get. Keeping the
// context plumbing here avoids scattering untyped context keys around the
// server packages.
package identity
