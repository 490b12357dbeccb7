package utils

import "time"

// populationSmoothing weights the newest sample in the moving average
const populationSmoothing = 0.1

// Stats tracks throughput and population for a running simulation
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	Density              float64 // living share of the grid, in percent
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one generation into the stats. area is the number of cells of
// the grid the population was counted on.
func (s *Stats) Update(generation, population, area int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	if area > 0 {
		s.Density = float64(population) / float64(area) * 100
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += (float64(population) - s.AveragePopulation) * populationSmoothing
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
