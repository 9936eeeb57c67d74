package arena

// Metrics is a point-in-time snapshot of an arena's usage.
type Metrics struct {
	SizeInUse   int     `json:"size_in_use"`
	Capacity    int     `json:"capacity"`
	Peak        int     `json:"peak"`
	Allocs      int     `json:"allocs"`
	Depth       int     `json:"depth"`
	LiveTemps   int     `json:"live_temps"`
	Utilization float64 `json:"utilization"`
	Status      string  `json:"status"`
}

// Metrics returns a snapshot of the arena's counters.
func (a *Arena) Metrics() Metrics {
	m := Metrics{
		SizeInUse: a.pos,
		Capacity:  len(a.mem),
		Peak:      a.peak,
		Allocs:    a.allocs,
		Depth:     a.depth,
		LiveTemps: a.open,
		Status:    a.status.String(),
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}
