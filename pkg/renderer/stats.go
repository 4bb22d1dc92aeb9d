package renderer

import (
	"fmt"
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Frames         int           // Number of frames rendered
	TotalPixels    int           // Total number of pixels rendered across all frames
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel across all frames
	Elapsed        time.Duration // Wall-clock time; summed per frame, or the whole render once aggregated
}

// Add accumulates the counters of another render into these stats
func (rs RenderStats) Add(other RenderStats) RenderStats {
	total := RenderStats{
		Frames:       rs.Frames + other.Frames,
		TotalPixels:  rs.TotalPixels + other.TotalPixels,
		TotalSamples: rs.TotalSamples + other.TotalSamples,
		Elapsed:      rs.Elapsed + other.Elapsed,
	}
	if total.TotalPixels > 0 {
		total.AverageSamples = float64(total.TotalSamples) / float64(total.TotalPixels)
	}
	return total
}

// String summarizes the stats on one line
func (rs RenderStats) String() string {
	return fmt.Sprintf("%d frames, %d pixels, %d samples (%.1f spp) in %v",
		rs.Frames, rs.TotalPixels, rs.TotalSamples, rs.AverageSamples, rs.Elapsed.Round(time.Millisecond))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image, in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}

	return total / float64(pixels)
}
