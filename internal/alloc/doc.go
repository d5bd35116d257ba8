// Package alloc owns the slot buffers behind a vector.
//
// A Buffer is either a plain Go slice or, for element types the garbage
// collector never needs to scan, a slice over an anonymous memory mapping.
// Both kinds are charged against an optional resource.Controller before
// any memory is touched, so a budget failure leaves nothing behind.
package alloc
