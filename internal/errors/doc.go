// Package errors provides structured, developer-friendly errors for Arbor.
//
// Every reportable failure has a registered code (e.g. "R001") with a
// category, a message, a detail paragraph and a documentation link. Errors
// carry the path of the tree node that caused them so a blank region in
// rendered output can be traced back to its source node.
//
// Usage:
//
//	return errors.New("R001").WithPath("div > ul > [2]")
package errors
