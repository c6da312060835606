// Command pddelaunay reads an OFF triangulation on standard input,
// flips it into a preferred-directions Delaunay triangulation, and
// writes the result as OFF on standard output. Direction vectors are
// the compiled defaults unless -config names a YAML file with
// `u: {x, y}` / `v: {x, y}` fields.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lvlath-labs/pddelaunay/config"
	"github.com/lvlath-labs/pddelaunay/flipper"
	"github.com/lvlath-labs/pddelaunay/kernel"
	"github.com/lvlath-labs/pddelaunay/mesh"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML file with u/v direction vectors")
	stats := flag.Bool("stats", false, "print kernel predicate filter statistics to stderr on exit")
	flag.Parse()

	if err := run(*configPath, *stats); err != nil {
		log.Fatalf("pddelaunay: %v", err)
	}
}

func run(configPath string, printStats bool) error {
	var opts []config.Option
	if configPath != "" {
		opts = append(opts, config.WithYAMLFile(configPath))
	}
	cfg, err := config.Resolve(opts...)
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}

	m, err := mesh.ReadOFF[float64](os.Stdin)
	if err != nil {
		return fmt.Errorf("reading OFF: %w", err)
	}

	if err := flipper.Flip(m, cfg.U, cfg.V); err != nil {
		return fmt.Errorf("flipping: %w", err)
	}

	if err := mesh.WriteOFF[float64](os.Stdout, m); err != nil {
		return fmt.Errorf("writing OFF: %w", err)
	}

	if printStats {
		printFilterStats()
	}
	return nil
}

// printFilterStats reports the kernel's per-predicate total/exact
// counters as a debug dump, for -stats.
func printFilterStats() {
	s := kernel.StatsFor[float64]()
	fmt.Fprintf(os.Stderr, "orientation: %d calls, %d exact fallbacks\n",
		s.OrientationTotal, s.OrientationExactCount)
	fmt.Fprintf(os.Stderr, "side_of_oriented_circle: %d calls, %d exact fallbacks\n",
		s.SideOfOrientedCircleTotal, s.SideOfOrientedCircleExact)
	fmt.Fprintf(os.Stderr, "preferred_direction: %d calls, %d exact fallbacks\n",
		s.PreferredDirectionTotal, s.PreferredDirectionExactCount)
}
