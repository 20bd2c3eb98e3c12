// Profiling:
// go build ./cmd/registry-benchmark
// ./registry-benchmark -profile mem
// go tool pprof -http=":8000" ./registry-benchmark mem.pprof

package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/vmath"
)

var (
	entityCount = flag.Int("entities", 10000, "Entities per round")
	rounds      = flag.Int("rounds", 20, "Benchmark rounds")
	profileMode = flag.String("profile", "none", "Profile: none|cpu|mem")
	outPath     = flag.String("out", "", "Write JSON report to file instead of stdout")
	seed        = flag.Uint64("seed", 1, "Random seed for removal order")
	verbose     = flag.Bool("v", false, "Log every round")
)

// Phase is the accumulated timing of one benchmark phase
type Phase struct {
	Name  string        `json:"name"`
	Total time.Duration `json:"total_ns"`
	PerOp float64       `json:"per_op_ns"`
	Ops   int           `json:"ops"`
}

// Report is the benchmark output document
type Report struct {
	Entities    int                  `json:"entities"`
	Rounds      int                  `json:"rounds"`
	Phases      []*Phase             `json:"phases"`
	FinalStats  engine.RegistryStats `json:"final_stats"`
	TotalAlloc  uint64               `json:"total_alloc_bytes"`
	Mallocs     uint64               `json:"mallocs"`
	ElapsedWall time.Duration        `json:"elapsed_ns"`
}

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Str("cmd", "registry-benchmark").Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}
	defer func() { core.HandleCrash(recover()) }()
	core.RegisterCrashLogger(log)

	var p interface{ Stop() }
	switch *profileMode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	case "none":
	default:
		log.Fatal().Str("profile", *profileMode).Msg("unknown profile mode")
	}

	start := time.Now()
	report := run(*entityCount, *rounds, *seed, log)
	report.ElapsedWall = time.Since(start)

	if p != nil {
		p.Stop()
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	report.TotalAlloc = m.TotalAlloc
	report.Mallocs = m.Mallocs

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode report")
	}
	if *outPath == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("write report")
	}
	log.Info().Str("path", *outPath).Dur("elapsed", report.ElapsedWall).Msg("report written")
}

func run(n, rounds int, seed uint64, log zerolog.Logger) *Report {
	phases := []*Phase{
		{Name: "insert"},
		{Name: "iterate"},
		{Name: "sort"},
		{Name: "assign"},
		{Name: "transfer"},
		{Name: "remove"},
	}
	timed := func(i, ops int, fn func()) {
		t0 := time.Now()
		fn()
		phases[i].Total += time.Since(t0)
		phases[i].Ops += ops
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	r := engine.NewRegistry(engine.WithLogger(log.Level(zerolog.WarnLevel)))
	snapshot := engine.NewRegistry(engine.WithLogger(log.Level(zerolog.InfoLevel)))
	sink := engine.NewRegistry()
	entities := make([]core.Entity, n)

	for round := range rounds {
		r.ClearAllComponents()

		timed(0, n, func() {
			for i := range entities {
				e := core.NewEntity()
				entities[i] = e
				r.Components.Motion.Insert(e, component.MotionComponent{
					Position: vmath.V2F(float64(i%256), float64(i/256)),
					Velocity: vmath.V2F(1, 0.5),
				})
				r.Components.Health.Insert(e, component.HealthComponent{Current: 10, Max: 10})
				if i%4 == 0 {
					r.Components.Bounds.Insert(e, component.NewWall(vmath.V2F(2, 1), float64(i)))
				}
			}
		})

		timed(1, n, func() {
			for _, m := range r.Components.Motion.All() {
				m.Integrate(1.0 / 60)
			}
		})

		// Shuffle slot order, then measure restoring entity order
		rng.Shuffle(len(entities), func(i, j int) { entities[i], entities[j] = entities[j], entities[i] })
		for _, e := range entities[:n/2] {
			v := *r.Components.Health.Get(e)
			r.Components.Health.Remove(e)
			r.Components.Health.Insert(e, v)
		}
		timed(2, r.Components.Health.Size(), func() {
			r.Components.Health.Sort(core.Entity.Compare)
		})

		timed(3, r.Stats().Components, func() {
			snapshot.Assign(r)
		})

		timed(4, n/10, func() {
			if _, err := engine.Transfer(sink, r, entities[:n/10], engine.StoreBounds, engine.StoreHealth); err != nil {
				log.Fatal().Err(err).Msg("transfer")
			}
		})

		timed(5, n/2, func() {
			for _, e := range entities[:n/2] {
				r.RemoveAllComponents(e)
			}
		})

		log.Debug().Int("round", round).Int("remaining", r.Stats().Components).Msg("round complete")
	}

	for _, p := range phases {
		if p.Ops > 0 {
			p.PerOp = float64(p.Total.Nanoseconds()) / float64(p.Ops)
		}
	}
	snapshot.LogStats(zerolog.InfoLevel)

	return &Report{
		Entities:   n,
		Rounds:     rounds,
		Phases:     phases,
		FinalStats: sink.Stats(),
	}
}
