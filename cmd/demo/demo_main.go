// Command demo greets people. Its flags are defined in this file, in a sibling file and
// in a sub-package, so completing them shows every relevance group:
//
//	eval "$(flagcomp script demo)"
//	demo --s<TAB>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/napalu/flagcomp"
	"github.com/napalu/flagcomp/cmd/demo/storage"
	"github.com/napalu/flagcomp/config"
	"github.com/napalu/flagcomp/env"
	"github.com/napalu/flagcomp/internal/logging"
	"github.com/napalu/flagcomp/registry"
	"go.uber.org/zap"
)

func main() {
	reg := registry.New("demo")
	completionFlags := flagcomp.RegisterFlags(reg)

	name := reg.String("name", "world", "Who to greet")
	count := reg.Int("count", 1, "How many times to greet")
	shout := reg.Bool("shout", false, "Greet in upper case")
	server := registerServerFlags(reg)
	store := storage.RegisterFlags(reg)

	parseErr := reg.Parse(os.Args[1:])

	cfg, err := config.Load(&env.DefaultEnvResolver{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	flagcomp.HandleCompletions(reg, completionFlags,
		flagcomp.WithConfig(cfg),
		flagcomp.WithLogger(logger))

	if parseErr != nil {
		os.Exit(2)
	}

	greeting := fmt.Sprintf("Hello, %s!", *name)
	if *shout {
		greeting = strings.ToUpper(greeting)
	}
	for i := 0; i < *count; i++ {
		fmt.Println(greeting)
	}

	logger.Debug("configuration",
		zap.String("listen", server.address()),
		zap.Duration("read_timeout", *server.readTimeout),
		zap.String("storage", store.String()))
}
