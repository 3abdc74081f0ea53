// SPDX-License-Identifier: MIT
// Package: assoc/keygen
//
// impl_orders.go - order implementations. All are O(n) time and space.

package keygen

func key(cfg config, i int) int { return cfg.start + i*cfg.step }

func ascending(cfg config, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = key(cfg, i)
	}
	return out
}

func descending(cfg config, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = key(cfg, n-1-i)
	}
	return out
}

// zigzag alternates between the lowest and highest remaining index.
func zigzag(cfg config, n int) []int {
	out := make([]int, 0, n)
	for lo, hi := 0, n-1; lo <= hi; lo, hi = lo+1, hi-1 {
		out = append(out, key(cfg, lo))
		if lo != hi {
			out = append(out, key(cfg, hi))
		}
	}
	return out
}

func shuffled(cfg config, n int) []int {
	out := ascending(cfg, n)
	cfg.rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// colliding spaces keys by modulus*step so key mod modulus stays fixed for
// step 1.
func colliding(cfg config, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.start + i*cfg.modulus*cfg.step
	}
	return out
}
