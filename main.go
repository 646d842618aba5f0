package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var (
		missionFile = flag.String("mission", "", "prior mission waypoint file (ordinal,lat,lon,alt records)")
		searchFile  = flag.String("search", "", "search-area polygon file (ordinal,lat,lon records or GeoJSON)")
		boundsFile  = flag.String("bounds", "", "boundary polygon file (ordinal,lat,lon records or GeoJSON)")
		outFile     = flag.String("out", "", "output file for the combined waypoint records")
		mode        = flag.String("mode", "decomp", "traversal mode: naive or decomp")
		simplifyEps = flag.Float64("simplify", 0, "boundary simplification threshold in meters (0 disables)")
		addr        = flag.String("addr", ":8080", "listen address for server mode")
	)
	flag.Parse()

	if *mode != "naive" && *mode != "decomp" {
		fmt.Fprintln(os.Stderr, "Error: Invalid mode passed")
		fmt.Fprintln(os.Stderr, "Available options: naive, decomp")
		os.Exit(1)
	}

	// With no mission files, run as an HTTP planning service.
	if *missionFile == "" && *searchFile == "" && *boundsFile == "" {
		if err := RunServer(*addr); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *missionFile == "" || *searchFile == "" || *boundsFile == "" || *outFile == "" {
		fmt.Fprintln(os.Stderr, "Error: file mode requires -mission, -search, -bounds and -out")
		os.Exit(1)
	}

	if err := runPipeline(*missionFile, *searchFile, *boundsFile, *outFile, *mode, *simplifyEps); err != nil {
		log.Fatalf("❌ Planning failed: %v", err)
	}
}

// runPipeline executes the file-based flow: load the mission inputs, plan
// the coverage path, route from the last mission point to its first
// waypoint, and write the combined record stream. Nothing is written unless
// planning fully succeeds.
func runPipeline(missionPath, searchPath, boundsPath, outPath, mode string, simplifyEps float64) error {
	mission, err := LoadMission(missionPath, searchPath, boundsPath)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()

	var path []Point
	if mode == "naive" {
		path, err = NaivePath(mission.SearchArea, cfg)
	} else {
		path, err = SearchPath(mission.SearchArea, cfg)
	}
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("search area produced no waypoints")
	}

	boundary := SimplifyBoundary(mission.Boundary, simplifyEps)
	interm, err := PathTo(mission.LastMissionPoint, path[0], boundary, cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := WriteMissionOutput(out, mission, interm, path, cfg.Altitude); err != nil {
		return err
	}

	log.Printf("✅ Wrote %d mission, %d route and %d search waypoints to %s\n",
		len(mission.MissionPoints), len(interm), len(path), outPath)
	return nil
}
