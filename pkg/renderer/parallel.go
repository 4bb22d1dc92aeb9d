package renderer

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ParallelConfig controls how many frames are rendered and averaged
type ParallelConfig struct {
	Frames     int   // Independent frames to average (0 = 1)
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Frame i samples from the stream seeded with Seed+i
}

// RenderFrames renders config.Frames independent frames of the scene in parallel
// and averages them into one gamma-corrected image. Any failed frame fails the
// whole render and no image is returned.
func RenderFrames(sc *scene.Scene, config ParallelConfig, logger core.Logger) (*image.RGBA, RenderStats, error) {
	if sc.BVH == nil {
		if err := sc.Preprocess(logger); err != nil {
			return nil, RenderStats{}, fmt.Errorf("failed to preprocess scene: %w", err)
		}
	}

	frames := max(config.Frames, 1)
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, frames)

	pool := NewWorkerPool(sc, numWorkers, frames)
	width, height := sc.Camera.ImageSize()
	logger.Printf("Rendering %d frame(s) at %dx%d, %d spp, max depth %d on %d workers\n",
		frames, width, height, sc.SamplingConfig.SamplesPerPixel, sc.SamplingConfig.MaxDepth, pool.GetNumWorkers())

	return collectFrames(pool, frames, config.Seed, logger)
}

// collectFrames submits every frame to the pool, waits for all of them and averages the results
func collectFrames(pool *WorkerPool, frames int, seed int64, logger core.Logger) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	pool.Start()
	for i := 0; i < frames; i++ {
		pool.SubmitTask(FrameTask{FrameIndex: i, Seed: seed + int64(i)})
	}

	images := make([]*image.RGBA, frames)
	var stats RenderStats
	var errs []error
	for done := 0; done < frames; done++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}
		images[result.FrameIndex] = result.Image
		stats = stats.Add(result.Stats)
		logger.Printf("Frame %d/%d complete (%d/%d done, %v)\n",
			result.FrameIndex+1, frames, done+1, frames, result.Stats.Elapsed.Round(time.Millisecond))
	}
	pool.Stop()

	if len(errs) > 0 {
		return nil, stats, fmt.Errorf("failed to render %d of %d frames: %w", len(errs), frames, errors.Join(errs...))
	}

	img, err := AverageImages(images)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to average frames: %w", err)
	}

	stats.Elapsed = time.Since(start)
	return img, stats, nil
}
