// Package subtitle builds the SRT and plain-text transcript documents for
// one file and writes them out in a single flush.
package subtitle
