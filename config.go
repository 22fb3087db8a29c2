package main

import (
	"os"

	"github.com/daho94/chroute/preproc"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) (Config, error) {
	slog.Info("reading config file", slog.String("file", file))
	var config Config
	data, err := os.ReadFile(file)
	if err != nil {
		return config, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(err, "failed to parse config file")
	}
	return config, nil
}

type Config struct {
	Build struct {
		Source      string             `yaml:"source"`
		GraphFile   string             `yaml:"graph-file"`
		Contraction ContractionOptions `yaml:"contraction"`
	} `yaml:"build"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

//**********************************************************
// contraction options
//**********************************************************

type ContractionOptions struct {
	MaxSettledNodes       int32  `yaml:"max-settled-nodes"`
	InitialSettledNodes   int32  `yaml:"initial-settled-nodes"`
	MaxHops               int32  `yaml:"max-hops"`
	EdgeDiffCoeff         int    `yaml:"edge-diff-coeff"`
	DeletedNeighborsCoeff int    `yaml:"deleted-neighbors-coeff"`
	SearchSpaceCoeff      int    `yaml:"search-space-coeff"`
	UpdateStrategy        string `yaml:"update-strategy"`
}

// Maps the yaml options onto contraction parameters, falling back to the
// defaults for unset values.
func (self ContractionOptions) ToParams() preproc.ContractionParams {
	params := preproc.DefaultContractionParams()
	if self.MaxSettledNodes > 0 {
		params.MaxSettledNodes = self.MaxSettledNodes
	}
	if self.InitialSettledNodes > 0 {
		params.InitialSettledNodes = self.InitialSettledNodes
	}
	if self.MaxHops > 0 {
		params.MaxHops = self.MaxHops
	}
	if self.EdgeDiffCoeff > 0 {
		params.EdgeDiffCoeff = self.EdgeDiffCoeff
	}
	if self.DeletedNeighborsCoeff > 0 {
		params.DeletedNeighborsCoeff = self.DeletedNeighborsCoeff
	}
	if self.SearchSpaceCoeff > 0 {
		params.SearchSpaceCoeff = self.SearchSpaceCoeff
	}
	switch self.UpdateStrategy {
	case "lazy":
		params.UpdateStrategy = preproc.UPDATE_LAZY
	case "neighbours":
		params.UpdateStrategy = preproc.UPDATE_NEIGHBOURS
	case "lazy+neighbours", "":
		params.UpdateStrategy = preproc.UPDATE_LAZY | preproc.UPDATE_NEIGHBOURS
	default:
		slog.Warn("unknown update strategy, using default", slog.String("strategy", self.UpdateStrategy))
	}
	return params
}
