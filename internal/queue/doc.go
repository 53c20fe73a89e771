// Package queue discovers and orders the media files a run will process.
//
// The queue is computed once per run: directory entries are filtered to
// recognized media extensions, sorted ascending by path, and never
// re-discovered mid-run. Skip-list and start-index handling live with the
// batch runner; this package only answers "which files, in which order".
package queue
