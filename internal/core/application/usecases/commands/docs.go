// Package commands contains the write-side operations of the terminal:
// checking a cart out into the order API, settling cash payments, advancing
// an order's status and refreshing the active-order snapshot.
//
// Commands follow a consistent pattern: a constructor-guarded command struct
// validated at creation, and a handler that performs the operation through
// the gateway port. The handlers own no state and no transactions; the
// remote order API is the authority, and every mutation leaves the local
// order list stale until the next refresh.
package commands
