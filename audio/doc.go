// Package audio plays a looping WAV ambience bed alongside playback.
//
// The bed is decoded with beep's WAV decoder and streamed through the
// system speaker. It is entirely optional; playback runs silent when no
// bed is configured.
package audio
