package experiments

import (
	"pirates/experiments/metrics"

	"golang.org/x/exp/slices"
)

// BaselineExperiment pits the search against the greedy and random agents.
func BaselineExperiment() Experiment {
	uct := metrics.AgentConfig{ID: 1, Kind: "uct", Goroutines: 1, Duration: TimeBudget}
	greedy := metrics.AgentConfig{ID: 2, Kind: "greedy"}
	random := metrics.AgentConfig{ID: 3, Kind: "random"}
	return Experiment{
		Name:    "baseline",
		Configs: []metrics.AgentConfig{uct, greedy, random},
		MatchUps: [][2]metrics.AgentConfig{
			{uct, greedy},
			{uct, random},
			{greedy, random},
		},
	}
}

// ExplorationExperiment varies c^2 against the default exploration.
func ExplorationExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: "uct", Goroutines: 1, Episodes: 200, Exploration: 2}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "uct", Goroutines: 1, Episodes: 200, Exploration: 0.5},
		{ID: 2, Kind: "uct", Goroutines: 1, Episodes: 200, Exploration: 1},
		{ID: 3, Kind: "uct", Goroutines: 1, Episodes: 200, Exploration: 4},
		{ID: 4, Kind: "sampling", Goroutines: 1, Episodes: 200, Exploration: 2, Temperature: 1},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:     "exploration",
		Configs:  append([]metrics.AgentConfig{baseline}, configs...),
		MatchUps: matchUps,
	}
}

var presets = map[string]func() Experiment{
	"baseline":                      BaselineExperiment,
	"exploration":                   ExplorationExperiment,
	"parallelization_to_strength":   ParallelizationExperiment,
	"parallelization_to_throughput": ThroughputExperiment,
}

// Preset returns the named experiment.
func Preset(name string) (Experiment, bool) {
	fn, ok := presets[name]
	if !ok {
		return Experiment{}, false
	}
	return fn(), true
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
