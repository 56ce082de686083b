package metrics

// RunConfig is one game setup compared in an experiment.
type RunConfig struct {
	ID         int
	Difficulty string
	Size       int
	Hazards    int
	Boosts     int
}
