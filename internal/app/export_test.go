package app

// SetShuffle replaces the shuffle used when two live sources contribute.
func (a *Aggregator) SetShuffle(f func(n int, swap func(i, j int))) { a.shuffle = f }
