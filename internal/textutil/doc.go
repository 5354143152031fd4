// Package textutil renders terminal text shared by the CLI and the run
// summary: rounded tables and title-cased labels.
package textutil
