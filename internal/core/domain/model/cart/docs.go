// Package cart implements the in-memory cart aggregate for one in-progress
// order: line items with cart-assigned identities, order-type and table
// binding, and the derived money getters backed by an injected tax
// calculator.
//
// The cart is a single-owner mutable aggregate. It is created explicitly per
// session and handed to its consumers; nothing in this package maintains
// global state. Concurrent mutation from multiple call sites requires
// external serialization, which in practice is the single UI-facing request
// handler.
package cart
