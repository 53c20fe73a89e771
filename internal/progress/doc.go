// Package progress renders the two nested run indicators: files completed
// across the batch and seconds of audio transcribed within the current
// file. Both are cosmetic; nothing reads them back for control flow.
package progress
