package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/publish"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// envFileVariable names an explicit .env file to load instead of the default locations
const envFileVariable = "RAYTRACER_ENV_FILE"

// Config holds the parsed command line
type Config struct {
	Scene   string
	Preset  string
	Frames  int // 0 = one per worker
	Workers int // 0 = one per logical CPU
	Seed    int64
	Output  string // Empty = output/<scene>/render_<timestamp>.png
	Mesh    string
	Texture string
	Upload  bool
	Help    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, renderer.NewDefaultLogger()))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout io.Writer, logger core.Logger) int {
	config, err := parseFlags(args, stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	if config.Help {
		showHelp(stdout)
		return 0
	}

	if err := loadEnv(); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	if err := render(config, time.Now(), logger); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newFlagSet registers the CLI flags, storing their values in config
func newFlagSet(config *Config, output io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&config.Scene, "scene", "default", "Scene to render (see -help for the list)")
	flags.StringVar(&config.Preset, "preset", "dev", "Quality preset: "+strings.Join(scene.PresetNames(), ", "))
	flags.IntVar(&config.Frames, "frames", 0, "Number of independent frames to render and average (0 = one per worker)")
	flags.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = one per logical CPU)")
	flags.Int64Var(&config.Seed, "seed", 42, "Random seed for scene content and sampling")
	flags.StringVar(&config.Output, "output", "", "Output file (.png, .jpg or .ppm)")
	flags.StringVar(&config.Mesh, "mesh", "", "OBJ file for the mesh scene")
	flags.StringVar(&config.Texture, "texture", "", "Image file for the checker scene globe")
	flags.BoolVar(&config.Upload, "upload", false, "Upload the render to S3 (configured by S3_* environment variables)")
	flags.BoolVar(&config.Help, "help", false, "Show help information")
	return flags
}

// parseFlags parses command line arguments into a Config
func parseFlags(args []string, output io.Writer) (Config, error) {
	var config Config
	flags := newFlagSet(&config, output)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	if config.Frames < 0 {
		return Config{}, fmt.Errorf("-frames must not be negative, got %d", config.Frames)
	}
	if config.Workers < 0 {
		return Config{}, fmt.Errorf("-workers must not be negative, got %d", config.Workers)
	}
	return config, nil
}

// showHelp prints usage, scenes and presets
func showHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&Config{}, w).PrintDefaults()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		note := ""
		if info.NeedsMesh {
			note = " (requires -mesh)"
		}
		fmt.Fprintf(w, "  %-12s - %s%s\n", info.ID, info.Description, note)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Quality presets:")
	for _, name := range scene.PresetNames() {
		preset, _ := scene.LookupPreset(name)
		fmt.Fprintf(w, "  %-12s - width %d, %d samples per pixel, max depth %d\n",
			name, preset.Width, preset.SamplesPerPixel, preset.MaxDepth)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output is saved to output/<scene>/render_<timestamp>.png unless -output is given")
}

// loadEnv loads environment variables from RAYTRACER_ENV_FILE if set, otherwise
// from a .env file next to the binary or in the working directory. Variables
// already set in the environment win.
func loadEnv() error {
	if path := os.Getenv(envFileVariable); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s=%s: %w", envFileVariable, path, err)
		}
		return nil
	}

	candidates := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		candidates = append([]string{filepath.Join(filepath.Dir(exe), ".env")}, candidates...)
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			if err := godotenv.Load(candidate); err != nil {
				return fmt.Errorf("failed to load %s: %w", candidate, err)
			}
			return nil
		}
	}
	return nil
}

// defaultWorkers returns the logical CPU count
func defaultWorkers() int {
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		return counts
	}
	return runtime.NumCPU()
}

// createScene builds the requested scene at the requested quality
func createScene(config Config) (*scene.Scene, error) {
	preset, err := scene.LookupPreset(config.Preset)
	if err != nil {
		return nil, err
	}

	sc, err := scene.Create(config.Scene, scene.Options{
		MeshPath:    config.Mesh,
		TexturePath: config.Texture,
		Seed:        config.Seed,
	})
	if err != nil {
		return nil, err
	}

	sc.ApplySampling(preset)
	return sc, nil
}

// outputFilename returns the explicit output path or a timestamped one under output/<scene>
func outputFilename(config Config, now time.Time) string {
	if config.Output != "" {
		return config.Output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", config.Scene, fmt.Sprintf("render_%s.png", timestamp))
}

// render creates the scene, renders it, saves the image and optionally uploads it
func render(config Config, now time.Time, logger core.Logger) error {
	sc, err := createScene(config)
	if err != nil {
		return err
	}

	workers := config.Workers
	if workers == 0 {
		workers = defaultWorkers()
	}
	frames := config.Frames
	if frames == 0 {
		frames = workers
	}

	logger.Printf("Rendering scene %q with preset %q\n", config.Scene, config.Preset)
	img, stats, err := renderer.RenderFrames(sc, renderer.ParallelConfig{
		Frames:     frames,
		NumWorkers: workers,
		Seed:       config.Seed,
	}, logger)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed: %s\n", stats)
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	filename := outputFilename(config, now)
	if err := renderer.SaveImage(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if !config.Upload {
		return nil
	}

	uploader, err := publish.NewS3Uploader(publish.S3ConfigFromEnv(), logger)
	if err != nil {
		return err
	}
	if _, err := uploader.UploadFile(context.Background(), filename); err != nil {
		return err
	}
	return nil
}
