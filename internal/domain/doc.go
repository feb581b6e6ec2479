// Package domain defines the core entities of the reference dataset and the
// sentinel errors shared by the lookup, validation and HTTP layers.
package domain
