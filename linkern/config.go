package linkern

import "github.com/katalvlaran/linkern/candidate"

// KickType selects the perturbation family the iterator uses to escape a
// local optimum between LK descents (spec §4.6).
type KickType int

const (
	// KickRandom picks all four cut positions uniformly at random.
	KickRandom KickType = iota
	// KickGeometric picks the first cut city uniformly and reaches the
	// other two by random walks of 1..walkMaxSteps steps over the
	// candidate graph.
	KickGeometric
	// KickClose samples several random cut-position triples and keeps the
	// one with the smallest total length of cut edges.
	KickClose
	// KickWalk picks the first cut city uniformly and reaches the other
	// two by single random steps over the candidate graph.
	KickWalk
)

// StopReason records why Solve stopped; only TimeLimit and LengthBound
// represent the "normal termination, not an error" case spec §7 names.
type StopReason int

const (
	// StoppedRepeatExhausted means RepeatCount kicks were all tried.
	StoppedRepeatExhausted StopReason = iota
	// StoppedTimeLimit means TimeBound elapsed.
	StoppedTimeLimit
	// StoppedLengthBound means the tour reached LengthBound or better.
	StoppedLengthBound
)

// Config parametrizes a single Solve call.
type Config struct {
	// N is the number of cities; must match Oracle.N() and len(InitialTour).
	N int
	// Oracle evaluates city-pair distances.
	Oracle Oracle
	// Candidates is the neighbor list LK steps scan; build with
	// candidate.FromMatrix or candidate.FromGraph.
	Candidates *candidate.CandidateSet
	// InitialTour is the starting permutation of city ids (length N).
	InitialTour []int32
	// StallCount bounds consecutive full queue passes with no improving
	// flip before the inner LK loop gives up.
	StallCount int
	// RepeatCount bounds the number of kick-then-improve rounds.
	RepeatCount int
	// TimeBound, if > 0, is a wall-clock budget in seconds.
	TimeBound float64
	// LengthBound, if > 0, stops the search as soon as a tour this short
	// or shorter is found.
	LengthBound int64
	// Kick selects the perturbation family.
	Kick KickType
	// Rng drives kick city selection and must be supplied by the caller
	// for deterministic runs (spec §8 scenario S5).
	Rng *RandState
	// Silent suppresses progress logging.
	Silent bool
}

// DefaultConfig returns reasonable defaults for everything but N, Oracle,
// Candidates, InitialTour, and Rng, which the caller must always supply.
func DefaultConfig() Config {
	return Config{
		StallCount:  1,
		RepeatCount: 100,
		TimeBound:   0,
		LengthBound: 0,
		Kick:        KickRandom,
		Silent:      true,
	}
}

// Result is the outcome of a Solve call.
type Result struct {
	Tour    []int32
	Length  int64
	Stopped StopReason
	Rounds  int
}
