package experiments

import "pirates/experiments/metrics"

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "uct", Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Kind: "uct", Goroutines: 2, Duration: TimeBudget},
	{ID: 3, Kind: "uct", Goroutines: 4, Duration: TimeBudget},
	{ID: 4, Kind: "uct", Goroutines: 8, Duration: TimeBudget},
	{ID: 5, Kind: "uct", Goroutines: 16, Duration: TimeBudget},
}

// ThroughputExperiment measures episodes per move as goroutines grow. Each
// matchup uses the same config for both players for the same playing
// strength and similar game length.
func ThroughputExperiment() Experiment {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return Experiment{
		Name:     "parallelization_to_throughput",
		Configs:  parallelConfigs,
		MatchUps: matchUps,
		Games:    1,
	}
}

// ParallelizationExperiment pairs each root-parallel agent against the
// sequential baseline.
func ParallelizationExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: "uct", Goroutines: 1, Duration: TimeBudget}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:     "parallelization_to_strength",
		Configs:  append([]metrics.AgentConfig{baseline}, parallelConfigs...),
		MatchUps: matchUps,
	}
}
