// Package language normalizes operator-supplied language codes before they
// reach the speech engine.
package language
