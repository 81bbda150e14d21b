// Package model describes the domain objects exchanged by the
// portal core: branches, content items, diffs and reviews.
//
// Objects in this package are serializable as JSON and YAML and carry
// no behavior beyond validation and derived read models.
package model
