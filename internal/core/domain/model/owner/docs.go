// Package owner implements the Owner aggregate: the Proprietaire operating
// relay points, holding their identifiers one-directionally.
package owner
