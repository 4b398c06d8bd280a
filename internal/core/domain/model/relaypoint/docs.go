// Package relaypoint implements the RelayPoint aggregate: a physical
// pickup/drop-off location with a bounded parcel capacity, an owning
// Proprietaire back-reference and a postal address used for search.
//
// Capacity is tracked as a counter kept in lockstep with the held parcel-id
// set; all stock mutation goes through the aggregate's bookkeeping methods.
package relaypoint
