package skillbotml

import (
	"fmt"
	"math"
)

// CorrectRound returns whether or not each output, rounded to 0 or 1, matches its target. It
// satisfies TrainArgs.IsCorrect, and assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		v := 0.0
		if outs[i] >= 0.5 {
			v = 1.0
		}

		if v != targets[i] {
			return false
		}
	}

	return true
}

// CorrectHighest returns whether or not the index of the largest value is the same in both
// slices. It satisfies TrainArgs.IsCorrect.
func CorrectHighest(outs, targets []float64) bool {
	var oMax, tMax int
	for i := range outs {
		if outs[i] > outs[oMax] {
			oMax = i
		}
		if targets[i] > targets[tMax] {
			tMax = i
		}
	}

	return oMax == tMax
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, stopping training after
// the given number of iterations.
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.ShouldTest or TrainArgs.SendStatus.
// 'frequency' is in units of iterations.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// EndEvery returns a function that satisfies DataSupplier.BatchEnded, ending a batch after
// each 'frequency' samples.
func EndEvery(frequency int) func(int) bool {
	return func(iteration int) bool {
		return (iteration+1)%frequency == 0
	}
}

// PrintResult returns an update function satisfying TrainArgs.Update that prints each Result
// as a CSV line, plus a final function to flush the last line. Status and test results
// arriving for the same iteration are merged.
func PrintResult() (update func(Result), final func()) {
	fmt.Println("Iteration, Cost, Percent Correct, Test Cost, Test Percent Correct")

	results := make([]float64, 4)
	has := false
	previous := -1

	flush := func() {
		strs := make([]string, len(results))
		for i, v := range results {
			if !math.IsNaN(v) {
				strs[i] = fmt.Sprintf("%v", v)
			}
		}

		fmt.Printf("%d, %s, %s, %s, %s\n", previous, strs[0], strs[1], strs[2], strs[3])
	}

	reset := func() {
		for i := range results {
			results[i] = math.NaN()
		}
	}
	reset()

	update = func(r Result) {
		if r.Iteration != previous && has {
			flush()
			reset()
		}

		if r.IsTest {
			results[2], results[3] = r.Cost, 100*r.Correct
		} else {
			results[0], results[1] = r.Cost, 100*r.Correct
		}

		previous = r.Iteration
		has = true
	}

	final = func() {
		if has {
			flush()
		}
	}

	return
}
