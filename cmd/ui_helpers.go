// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// spinnerFrames is the stick-style animation used while a request is in flight.
var spinnerFrames = []string{"|", "/", "-", "\\"}

// startInlineSpinner starts a simple inline spinner animation on a single
// line: rotating frames followed by the provided text, redrawn in place.
// The returned function stops the spinner and clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}
