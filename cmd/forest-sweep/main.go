package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"forest-ca/internal/sims/forest"
)

type scenarioResult struct {
	seed int64

	census    map[forest.TileKind]int
	peakFires int
	fireTicks int
}

func main() {
	steps := flag.Int("steps", 500, "ticks to simulate per seed")
	seeds := flag.Int("seeds", 16, "number of seeds to sweep")
	firstSeed := flag.Int64("first-seed", 1, "first seed in the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 50, "map width")
	height := flag.Int("h", 50, "map height")
	water := flag.Float64("water", 0.4, "water threshold")
	spread := flag.Float64("spread", 1e3, "fire spread multiplier")
	base := flag.Float64("base", 1e-3, "base fire susceptibility")
	flag.Parse()

	baseCfg := forest.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Params.WaterThreshold = *water
	baseCfg.Params.SpreadMultiplier = *spread
	baseCfg.Params.BaseSusceptibility = *base
	if err := baseCfg.Validate(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %d seeds on a %dx%d map (%d workers, %d steps)\n",
		*seeds, *width, *height, *workers, *steps)

	jobs := make(chan int64)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runScenario(baseCfg, seed, *steps)
			}
		}()
	}

	go func() {
		for s := 0; s < *seeds; s++ {
			jobs <- *firstSeed + int64(s)
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	kinds := forest.Kinds()
	fmt.Printf("%-8s %-10s %-10s %s\n", "seed", "peak-fire", "fire-ticks", "final census")
	for _, res := range all {
		fmt.Printf("%-8d %-10d %-10d", res.seed, res.peakFires, res.fireTicks)
		for _, k := range kinds {
			if n := res.census[k]; n > 0 {
				fmt.Printf(" %s=%d", k, n)
			}
		}
		fmt.Println()
	}

	var peakSum, tickSum int
	for _, res := range all {
		peakSum += res.peakFires
		tickSum += res.fireTicks
	}
	if len(all) > 0 {
		fmt.Printf("mean peak fires %.1f, mean burning ticks %.1f of %d\n",
			float64(peakSum)/float64(len(all)), float64(tickSum)/float64(len(all)), *steps)
	}
}

func runScenario(cfg forest.Config, seed int64, steps int) scenarioResult {
	cfg.Seed = seed
	world, err := forest.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(seed)

	res := scenarioResult{seed: seed}
	for i := 0; i < steps; i++ {
		world.Step()
		fires := world.Census()[forest.Fire]
		if fires > res.peakFires {
			res.peakFires = fires
		}
		if fires > 0 {
			res.fireTicks++
		}
	}

	res.census = world.Census()
	return res
}
