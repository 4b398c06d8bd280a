// Package client implements the Client aggregate: a registered customer
// who sends and receives parcels through relay points.
package client
