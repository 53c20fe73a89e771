// Command faster-folder batch-transcribes a folder of audio and video
// recordings into SRT subtitles and plain-text transcripts.
package main
