package analysis

import "github.com/user/fortran_output_go/internal/onephoton"

// ChannelSummary holds descriptive statistics for one ionisation path.
type ChannelSummary struct {
	HoleKey    onephoton.HoleKey
	FinalKappa int
	Label      string // e.g. "3p_{3/2} to d_{5/2}"
	NumSamples int

	OmegaMin float64 // Hartree
	OmegaMax float64 // Hartree

	MeanRate   float64
	StdDevRate float64 // population standard deviation
	RateRange  float64

	PeakAmplitude float64 // largest |amplitude|
	PeakOmega     float64 // photon energy of PeakAmplitude
}

// RankedChannelInfo is used for ranking channels by a single value.
type RankedChannelInfo struct {
	Label string
	Value float64
}

// SummaryResults holds the summaries of every loaded hole.
type SummaryResults struct {
	Channels     []ChannelSummary
	RankedByRate []RankedChannelInfo // Sorted by mean rate, descending
	Errors       []string
}

func NewSummaryResults() *SummaryResults {
	return &SummaryResults{
		Channels:     make([]ChannelSummary, 0),
		RankedByRate: make([]RankedChannelInfo, 0),
		Errors:       make([]string, 0),
	}
}
