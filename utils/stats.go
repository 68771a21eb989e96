package utils

import "time"

// Stats tracks a single run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generations          int
	Births               int
	Deaths               int
	PeakPopulation       int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe records the population of the seeded board before any advance
func (s *Stats) Observe(population int) {
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.trackPopulation(population)
}

// Update records one completed generation
func (s *Stats) Update(births, deaths, population int, duration time.Duration) {
	s.Generations++
	s.Births += births
	s.Deaths += deaths
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.trackPopulation(population)
}

// Simple moving average for population
func (s *Stats) trackPopulation(population int) {
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the run started
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
