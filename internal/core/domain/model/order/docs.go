// Package order models the server-owned order as seen by the point-of-sale
// client: the read model itself, the forward-only status state machine
// shared by the kitchen and cashier views, and the order-source
// classification that separates in-house channels from third-party delivery
// aggregators.
//
// Status and Type are closed enums with a safe Unknown fallback for wire
// tags the client does not recognize yet. Source is deliberately open: it
// keeps the raw tag so a new aggregator appearing server-side renders with a
// default descriptor instead of failing.
//
// Everything in this package is pure. Transitions are recommended, never
// committed; the order API is the authority and the local order list is
// stale after every mutation until re-fetched.
package order
