// audio_interface.go - Audio device error type

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import "fmt"

// AudioError mirrors VideoError for the audio device.
type AudioError struct {
	Operation string
	Details   string
	Err       error
}

func (e *AudioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("audio %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("audio %s failed: %s", e.Operation, e.Details)
}

func (e *AudioError) Unwrap() error { return e.Err }
