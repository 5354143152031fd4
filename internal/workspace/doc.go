// Package workspace owns the on-disk work tree.
//
// A run wipes the tree, downloads into original/, and writes normalized
// copies into normalized/ under the same relative paths. Nothing survives
// from one run to the next except the sibling lock file that keeps two runs
// from deleting each other's output.
package workspace
