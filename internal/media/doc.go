// Package media normalizes input files to the WAV form the speech engine
// consumes, delegating the conversion itself to ffmpeg.
package media
