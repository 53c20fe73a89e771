// Package whisper adapts the external faster-whisper speech engine.
//
// A single worker process is started per run so the model loads exactly
// once. The worker receives WAV paths on stdin and answers with a line
// protocol on stdout: a start event carrying the audio duration, one event
// per transcribed segment, and an end event. Segments are consumed in a
// single forward pass; the stream is never materialized.
package whisper
