package swiss

type Stats struct {
	Size       int
	Capacity   int
	MaxSize    int
	LoadFactor float32
}

// Stats returns a snapshot of the set's occupancy.
func (s *Set) Stats() Stats {
	return Stats{
		Size:       s.size,
		Capacity:   s.capacity,
		MaxSize:    s.maxSize,
		LoadFactor: float32(s.size) / float32(s.capacity),
	}
}
