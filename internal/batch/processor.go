// Package batch renders a folding sequence, flat to fully folded, with a
// worker pool.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"crease-renderer/internal/config"
	"crease-renderer/internal/creasepattern"
	"crease-renderer/internal/export"
	"crease-renderer/internal/logger"
	"crease-renderer/internal/render"
)

// Frame is one step of the sequence.
type Frame struct {
	Index  int
	T      float64 // fraction of the target angles
	Angles []float64
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   Frame
	Image   string // path relative to the output dir
	Success bool
	Error   string
}

// Frames spaces n frames evenly from flat (t=0) to folded (t=1).
func Frames(m creasepattern.Model, n int) []Frame {
	if n < 2 {
		n = 2
	}
	out := make([]Frame, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = Frame{Index: i, T: t, Angles: render.TargetAngles(m, t)}
	}
	return out
}

// Run renders frames into cfg.Output.Dir using cfg.Batch.Workers goroutines.
// Each worker draws on its own surfaces. Cancelling ctx stops handing out
// frames; frames never started are reported as failed.
func Run(ctx context.Context, cfg config.Config, m creasepattern.Model, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	for i, f := range frames {
		results[i] = Result{Frame: f, Error: "not rendered"}
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Info("sequence progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("frames_per_sec", rate),
					)
				}
			}
		}
	}()

	workers := max(cfg.Batch.Workers, 1)
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, m, frames[idx])
				processed.Add(1)
			}
		}()
	}

send:
	for i := range frames {
		select {
		case <-ctx.Done():
			break send
		case frameChan <- i:
		}
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg config.Config, m creasepattern.Model, f Frame) Result {
	name := fmt.Sprintf("frame_%03d.%s", f.Index, cfg.Output.Format)
	img, err := render.Folded(m, f.Angles, cfg.Render)
	if err != nil {
		return Result{Frame: f, Error: err.Error()}
	}
	if err := export.Save(filepath.Join(cfg.Output.Dir, name), img); err != nil {
		return Result{Frame: f, Error: err.Error()}
	}
	return Result{Frame: f, Image: name, Success: true}
}
