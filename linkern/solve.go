package linkern

import (
	"time"

	"github.com/katalvlaran/linkern/flipper"
)

// Solve runs iterated Lin–Kernighan over cfg's initial tour and returns the
// best tour found, per spec §4.7 / §6's linkern_tour contract: seed the
// flipper and work queue, run the LK inner loop to a local optimum, then
// repeatedly kick and re-descend, keeping the best tour seen and reverting
// to it whenever a round ends up longer, until RepeatCount rounds run out,
// TimeBound elapses, or the tour reaches LengthBound.
func Solve(cfg Config) (Result, error) {
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	flp := &flipper.Flipper{}
	if err := flp.Init(cfg.InitialTour); err != nil {
		return Result{}, ErrInvalidInput
	}

	length, err := tourLength(flp, cfg.Oracle, cfg.N)
	if err != nil {
		return Result{}, err
	}

	eng, err := newEngine(cfg.N, cfg.Oracle, cfg.Candidates, flp, length)
	if err != nil {
		return Result{}, err
	}

	deadline := time.Time{}
	if cfg.TimeBound > 0 {
		deadline = time.Now().Add(time.Duration(cfg.TimeBound * float64(time.Second)))
	}

	eng.enqueueAll()
	if err := eng.runInnerLoop(cfg.StallCount); err != nil {
		return Result{}, err
	}

	best := make([]int32, cfg.N)
	if err := flp.Cycle(best); err != nil {
		return Result{}, err
	}
	bestLength := eng.length

	stopped := StoppedRepeatExhausted
	round := 0
	for ; round < cfg.RepeatCount; round++ {
		if cfg.LengthBound > 0 && bestLength <= cfg.LengthBound {
			stopped = StoppedLengthBound
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			stopped = StoppedTimeLimit
			break
		}

		affected, err := eng.kick(cfg.Kick, cfg.Rng)
		if err != nil {
			return Result{}, err
		}
		if affected == nil {
			// Tour too small for a double bridge; nothing further to try.
			stopped = StoppedRepeatExhausted
			break
		}
		eng.resetWork()
		length, err = tourLength(flp, cfg.Oracle, cfg.N)
		if err != nil {
			return Result{}, err
		}
		eng.length = length
		eng.wake(affected...)

		if err := eng.runInnerLoop(cfg.StallCount); err != nil {
			return Result{}, err
		}

		if eng.length < bestLength {
			bestLength = eng.length
			if err := flp.Cycle(best); err != nil {
				return Result{}, err
			}
		} else if eng.length > bestLength {
			if err := flp.Init(best); err != nil {
				return Result{}, err
			}
			eng.length = bestLength
		}
	}

	return Result{
		Tour:    best,
		Length:  bestLength,
		Stopped: stopped,
		Rounds:  round,
	}, nil
}

func validateConfig(cfg Config) error {
	if cfg.N < 3 {
		return ErrInvalidInput
	}
	if cfg.Oracle == nil || cfg.Oracle.N() != cfg.N {
		return ErrInvalidInput
	}
	if cfg.Candidates == nil || cfg.Candidates.N() != cfg.N {
		return ErrInvalidInput
	}
	if len(cfg.InitialTour) != cfg.N {
		return ErrInvalidInput
	}
	if cfg.Rng == nil {
		return ErrInvalidInput
	}
	seen := make([]bool, cfg.N)
	for _, c := range cfg.InitialTour {
		if c < 0 || int(c) >= cfg.N || seen[c] {
			return ErrInvalidInput
		}
		seen[c] = true
	}
	return nil
}

func tourLength(flp *flipper.Flipper, oracle Oracle, n int) (int64, error) {
	var total int64
	for c := 0; c < n; c++ {
		nx, err := flp.Next(int32(c))
		if err != nil {
			return 0, err
		}
		d, err := oracle.Dist(c, int(nx))
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}
