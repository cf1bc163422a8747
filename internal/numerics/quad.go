package numerics

// Simpson integrates y over the uniform grid x using composite Simpson's
// rule. When the interval count is odd the last three intervals use the
// 3/8 rule, keeping the whole estimate fourth order.
func Simpson(y, x []float64) float64 {
	n := len(y)
	if n < 2 {
		return 0
	}
	h := (x[n-1] - x[0]) / float64(n-1)
	if n == 2 {
		return h * (y[0] + y[1]) / 2
	}
	if n == 3 {
		return h / 3 * (y[0] + 4*y[1] + y[2])
	}

	intervals := n - 1
	end := n - 1
	tail := 0.0
	if intervals%2 != 0 {
		// Peel off a 3/8 segment so the remaining count is even.
		end = n - 4
		tail = 3 * h / 8 * (y[n-4] + 3*y[n-3] + 3*y[n-2] + y[n-1])
	}

	sum := 0.0
	if end > 0 {
		sum = y[0] + y[end]
		for i := 1; i < end; i += 2 {
			sum += 4 * y[i]
		}
		for i := 2; i < end; i += 2 {
			sum += 2 * y[i]
		}
		sum *= h / 3
	}

	return sum + tail
}
