// Package parcel implements the Parcel aggregate: the package a client sends
// through a relay point, its five-state lifecycle (pending, in transit,
// received, delivered, withdrawn) and the QR-code pickup credential.
//
// All status mutation funnels through the Status transition table, so the
// aggregate can never reach an illegal lifecycle state.
package parcel
