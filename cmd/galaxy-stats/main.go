package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"galaxy/internal/app"
	"galaxy/internal/galaxy"
)

type branchStats struct {
	points     int
	meanRadius float64
	maxRadius  float64
	meanHeight float64
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params := cfg.Params()
	cloud, err := galaxy.Generate(params, galaxy.NewSource(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}

	lo, hi := cloud.Bounds()
	fmt.Printf("seed=%d points=%d branches=%d\n", cfg.Seed, cloud.Len(), params.Branches)
	fmt.Printf("bounds min=(%.3f, %.3f, %.3f) max=(%.3f, %.3f, %.3f)\n",
		lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "branch\tpoints\tmean r\tmax r\tmean |y|")
	for i, s := range collect(cloud, params.Branches) {
		fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t%.4f\n", i, s.points, s.meanRadius, s.maxRadius, s.meanHeight)
	}
	tw.Flush()
}

func collect(cloud *galaxy.PointCloud, branches int) []branchStats {
	stats := make([]branchStats, branches)
	for i, p := range cloud.Positions {
		s := &stats[i%branches]
		r := math.Hypot(p.X(), p.Z())
		s.points++
		s.meanRadius += r
		s.maxRadius = math.Max(s.maxRadius, r)
		s.meanHeight += math.Abs(p.Y())
	}
	for i := range stats {
		if n := float64(stats[i].points); n > 0 {
			stats[i].meanRadius /= n
			stats[i].meanHeight /= n
		}
	}
	return stats
}
