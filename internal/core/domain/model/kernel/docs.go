// Package kernel provides the core domain primitives shared by the
// point-of-sale domain model.
//
// Currently it holds UUID, the identifier value object used for cart line
// items and server-assigned order identities. The primitive is immutable and
// safe for concurrent reads; its zero value is invalid and fails validation,
// which forces construction through the provided factory functions.
package kernel
