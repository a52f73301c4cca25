// Package types defines the configuration, figure catalog interface, entity
// types, and standard errors shared by the mathdoc packages.
package types
