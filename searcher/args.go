package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant, c^2 in the UCT bonus

const DefaultGoroutines = 1
