// flowdemo generates a random capacity network, computes its maximum flow
// with Edmonds–Karp, and replays the augmenting paths step by step.
package main

import (
	"flag"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/flow"
	"github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"
	"github.com/YohanAvishke/Algorithms-coursework-sub001/netgen"
)

func main() {
	nodes := flag.Int("nodes", 8, "number of nodes in the generated network")
	prob := flag.Float64("prob", 0.3, "edge probability for each ordered node pair")
	maxCap := flag.Int64("maxcap", 12, "maximum edge capacity")
	seed := flag.Int64("seed", 0, "RNG seed; 0 derives one from the clock")
	source := flag.Int("source", 0, "source node index")
	sink := flag.Int("sink", -1, "sink node index; -1 means nodes-1")
	debug := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}).Level(level)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *sink < 0 {
		*sink = *nodes - 1
	}

	capacity, err := netgen.Random(*nodes, *prob, *maxCap, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal().Err(err).Msg("generating network")
	}
	log.Info().
		Int("nodes", *nodes).
		Int("edges", countEdges(capacity)).
		Int64("seed", *seed).
		Msg("network generated")

	result, err := flow.EdmondsKarp(capacity, *source, *sink,
		flow.WithOnAugment(func(step int, p flow.AugmentingPath) {
			log.Info().
				Int("step", step).
				Str("path", formatPath(p)).
				Int64("bottleneck", p.Bottleneck).
				Msg("augmenting path")
		}))
	if err != nil {
		log.Fatal().Err(err).Msg("computing max flow")
	}

	replayed, err := flow.Replay(capacity, result.Paths)
	if err != nil {
		log.Fatal().Err(err).Msg("replaying augmenting paths")
	}
	log.Debug().Bool("residual_reproduced", replayed.Equal(result.Residual)).Msg("replay check")

	log.Info().
		Int64("max_flow", result.MaxFlow).
		Int("augmenting_paths", len(result.Paths)).
		Int("source", *source).
		Int("sink", *sink).
		Msg("done")
}

// formatPath renders an augmenting path as "0→2→5".
func formatPath(p flow.AugmentingPath) string {
	var sb strings.Builder
	for i, e := range p.Edges {
		if i == 0 {
			sb.WriteString(strconv.Itoa(e.From))
		}
		sb.WriteString("→")
		sb.WriteString(strconv.Itoa(e.To))
	}

	return sb.String()
}

// countEdges counts positive entries of the capacity matrix.
func countEdges(m *matrix.Matrix) int {
	var edges int
	for i := 0; i < m.N(); i++ {
		for _, c := range m.Row(i) {
			if c > 0 {
				edges++
			}
		}
	}

	return edges
}
