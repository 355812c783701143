package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"island-gen/internal/cache"
	"island-gen/internal/config"
	"island-gen/internal/profiling"
	"island-gen/internal/world"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	settings, opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	// On SIGINT or SIGTERM closer runs the bound cleanups and exits, so the
	// interrupt waits here for generation to observe the cancellation.
	gen := newGeneration(context.Background(), shutdownGrace)
	closer.Bind(func() {
		if !gen.Interrupt() {
			log.Printf("Generation did not stop within %v", shutdownGrace)
		}
	})
	defer closer.Close()

	logSettings(settings)

	start := time.Now()
	island, err := loadOrGenerate(gen.ctx, settings, opts.cacheDir)
	gen.Finish()
	if errors.Is(err, context.Canceled) {
		log.Printf("Generation cancelled")
		return
	}
	if err != nil {
		closer.Fatalln("generation failed:", err)
	}
	logIsland(island, time.Since(start))

	if opts.view {
		if err := runViewer(island, settings, opts); err != nil {
			closer.Fatalln("viewer:", err)
		}
	}
}

// loadOrGenerate returns the cached island for s when dir holds one, and
// generates and stores it otherwise. An empty dir skips the cache.
func loadOrGenerate(ctx context.Context, s config.WorldGenSettings, dir string) (*world.Island, error) {
	if dir == "" {
		return world.Generate(ctx, s)
	}

	store, err := cache.Open(dir)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	key := cache.Key(s)
	island, err := store.Load(key)
	switch {
	case err == nil:
		log.Printf("Loaded %s from %s", key, dir)
		return island, nil
	case errors.Is(err, cache.ErrCorrupt):
		log.Printf("Discarding cached %s: %v", key, err)
	case !errors.Is(err, cache.ErrMiss):
		return nil, err
	}

	island, err = world.Generate(ctx, s)
	if err != nil {
		return nil, err
	}
	if err := store.Save(key, island); err != nil {
		log.Printf("Could not cache %s: %v", key, err)
	}
	return island, nil
}

func logSettings(s config.WorldGenSettings) {
	log.Printf("Current Terrain Parameter: Frequency: %g Octave: %d Amplitude: %g Persistence: %g Lacunarity: %g Seed: %d Width: %d Step: %d",
		s.Frequency, s.Octaves, s.Amplitude, s.Persistence, s.Lacunarity, s.Seed, s.Width, s.Step)
	log.Printf("Sampler: %s, %d nodes per axis, %d workers", s.Sampler, s.Nodes(), s.Workers)
}

func logIsland(is *world.Island, took time.Duration) {
	log.Printf("Generated %d vertices (%d terrain) and %d indices (%d terrain) in %v",
		is.VertexCount(), is.TerrainVertexCount, len(is.Indices), is.TerrainIndexCount, took.Round(time.Millisecond))
	log.Printf("Height range [%.4f, %.4f], water level %.4f", is.MinHeight, is.MaxHeight, is.Water.Level)
	log.Printf("Shading: waterLevel %.4f HeightDif_low %.4f HeightDif_high %.4f waterDepthMax %.4f",
		is.Hints.WaterLevel, is.Hints.HeightDifferenceLow, is.Hints.HeightDifferenceHigh, is.Hints.WaterDepthMax)
	digest := is.Digest()
	log.Printf("Digest: %s", hex.EncodeToString(digest[:]))
	log.Printf("Slowest stages: %s", profiling.TopN(4))
}
