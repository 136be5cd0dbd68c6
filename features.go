package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/intuitionamiga/SortSonic/sorter"
	"github.com/intuitionamiga/SortSonic/synth"
)

// Version is overridden at link time with -ldflags "-X main.Version=...".
var Version = "dev"

// compiledFeatures is filled by the backend files' init().
var compiledFeatures []string

// writeVersion reports the build, the fixed audio format and the run limits.
func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "SortSonic %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  audio:  %d Hz, %d ch, float32 square wave\n", synth.SAMPLE_RATE, synth.CHANNEL_COUNT)
	fmt.Fprintf(w, "  limits: size <= %d, tps <= %d, tone <= %.0f Hz by default\n", sorter.MAX_SIZE, MAX_TPS, sorter.MAX_FREQUENCY)

	features := slices.Sorted(slices.Values(compiledFeatures))
	if len(features) == 0 {
		features = []string{"(none)"}
	}
	fmt.Fprintf(w, "  backends: %v\n", features)
}
