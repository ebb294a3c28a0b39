// Package services provides the stateless domain services of the
// point-of-sale core:
//
//   - Pricing: subtotal, tax, total and change arithmetic in integer
//     currency units
//   - KitchenBoard: filtering and grouping of fetched orders for the kitchen
//     and admin views, plus elapsed-time display derivation
//
// Both services are pure functions of their arguments. They hold no mutable
// state, issue no I/O and are safe to call repeatedly and concurrently on
// every poll tick.
package services
