// Package batch orchestrates one run: discover the queue, then for each
// file normalize to WAV, stream segments from the speech engine, write the
// subtitle and transcript documents, and clean up intermediates.
//
// The pipeline is strictly sequential. Per-file recoverable conditions
// (skip-listed file, vanished file, empty transcript) are logged and the
// run continues; a converter or engine failure aborts the run, since a
// broken tool would corrupt everything downstream.
package batch
