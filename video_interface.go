// video_interface.go - Frame driver interface for SortSonic

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
)

// VideoError provides detailed error context for video operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error { return e.Err }

// DisplayConfig contains backend-independent configuration
type DisplayConfig struct {
	Width       int
	Height      int
	RefreshRate int // Frame clock in ticks per second
	ShowHUD     bool
}

// VideoOutput drives the frame clock: one Demo.Update then one Demo.Draw
// per tick until the demo is done or ctx is cancelled.
type VideoOutput interface {
	Run(ctx context.Context) error
}
