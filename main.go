package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/daho94/chroute/graph"
	"github.com/daho94/chroute/parser"
	"github.com/daho94/chroute/preproc"
	"golang.org/x/exp/slog"
)

var SERVER *AppServer

// Holds the components shared between request handlers.
type AppServer struct {
	ch_graph *graph.CHGraph
}

func (self *AppServer) GetCHGraph() *graph.CHGraph {
	return self.ch_graph
}

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	if len(os.Args) < 2 {
		fmt.Println("usage: chroute <build|serve> [config.yaml]")
		os.Exit(1)
	}
	config_file := "./config.yaml"
	if len(os.Args) > 2 {
		config_file = os.Args[2]
	}
	config, err := ReadConfig(config_file)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		if err := RunBuild(config); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	case "serve":
		if err := RunServe(config); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	default:
		fmt.Println("usage: chroute <build|serve> [config.yaml]")
		os.Exit(1)
	}
}

// Parses the configured pbf source, contracts the graph and stores the
// overlay.
func RunBuild(config Config) error {
	base, weight, err := parser.ParseGraph(config.Build.Source)
	if err != nil {
		return err
	}

	contractor := preproc.NewNodeContractor(base, weight, config.Build.Contraction.ToParams())
	ch := contractor.Run()
	stats := contractor.Stats()
	slog.Info("preprocessing finished",
		slog.Int("shortcuts", stats.ShortcutsAdded),
		slog.Int("witness_searches", stats.WitnessSearches),
		slog.Duration("duration", stats.TotalTime))

	ch_graph := graph.BuildCHGraph(base, weight, nil, ch)
	return graph.StoreCHGraph(ch_graph, config.Build.GraphFile)
}

// Loads the stored overlay and serves routing requests.
func RunServe(config Config) error {
	ch_graph, err := graph.LoadCHGraph(config.Build.GraphFile)
	if err != nil {
		return err
	}
	SERVER = &AppServer{ch_graph: ch_graph}

	app := http.NewServeMux()
	MapPost(app, "/v0/routing", HandleRoutingRequest)

	port := config.Server.Port
	if port == 0 {
		port = 5002
	}
	slog.Info("starting server", slog.Int("port", port))
	return http.ListenAndServe(fmt.Sprintf(":%d", port), app)
}
