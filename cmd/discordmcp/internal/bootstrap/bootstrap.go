// Package bootstrap contains some initialisation functions that are shared
// between main and the top level commands.
package bootstrap
