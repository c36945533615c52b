// Package types defines the gadget record, the catalog query results, and
// the standard errors shared by the catalog, the validator, and the console.
package types
