package main

import (
	"flag"
	"os"

	"github.com/turtletrack/turtletrack/internal/logger"
	"github.com/turtletrack/turtletrack/trackservice"
)

func main() {
	// Optional build-target flag override (local | cloud)
	buildTarget := flag.String("build-target", "", "Override BUILD_TARGET (local, cloud)")
	flag.Parse()

	if *buildTarget != "" {
		_ = os.Setenv("TURTLE_TRACK_BUILD_TARGET", *buildTarget)
	}

	log := logger.New("track-service")
	if err := trackservice.Run(); err != nil {
		log.Fatal().Err(err).Msg("track service exited with error")
	}
}
