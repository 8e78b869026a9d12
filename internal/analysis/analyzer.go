// Package analysis computes descriptive per-channel summaries of loaded
// one-photon data, mostly as a sanity check of what was read from disk.
package analysis

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/user/fortran_output_go/internal/onephoton"
)

// SummarizeChannels returns one summary per ionisation path of c, in column order.
func SummarizeChannels(key onephoton.HoleKey, c *onephoton.Channels) ([]ChannelSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("channels are nil, cannot summarize")
	}
	omega := c.RawOmegaData()
	holeName := c.Hole().Name

	summaries := make([]ChannelSummary, 0, 3)
	for _, p := range c.IonisationPaths() {
		rate, err := c.RawRate(p.Kappa)
		if err != nil {
			return nil, err
		}
		amp, err := c.RawAmpData(p.Kappa)
		if err != nil {
			return nil, err
		}

		s := ChannelSummary{
			HoleKey:    key,
			FinalKappa: p.Kappa,
			Label:      holeName + " to " + p.Name,
			NumSamples: len(rate),
			OmegaMin:   floats.Min(omega),
			OmegaMax:   floats.Max(omega),
		}
		s.MeanRate, s.StdDevRate = stat.PopMeanStdDev(rate, nil)
		s.RateRange = floats.Max(rate) - floats.Min(rate)

		absAmp := make([]float64, len(amp))
		for i, a := range amp {
			absAmp[i] = math.Abs(a)
		}
		peak := floats.MaxIdx(absAmp)
		s.PeakAmplitude = absAmp[peak]
		s.PeakOmega = omega[peak]

		summaries = append(summaries, s)
	}
	return summaries, nil
}

// SummarizeAll summarizes every hole loaded in o, ordered by (n, kappa).
// Holes that fail are reported in Errors and skipped.
func SummarizeAll(o *onephoton.OnePhoton) (*SummaryResults, error) {
	if o == nil {
		return nil, fmt.Errorf("registry is nil, cannot summarize")
	}
	all := o.AllChannels()
	if len(all) == 0 {
		return nil, fmt.Errorf("no holes loaded for %s", o.AtomName())
	}

	keys := make([]onephoton.HoleKey, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b onephoton.HoleKey) int {
		return cmp.Or(cmp.Compare(a.N, b.N), cmp.Compare(a.Kappa, b.Kappa))
	})

	results := NewSummaryResults()
	ranked := []RankedChannelInfo{}
	for _, key := range keys {
		summaries, err := SummarizeChannels(key, all[key])
		if err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Skipping hole n=%d kappa=%d: %v", key.N, key.Kappa, err))
			continue
		}
		for _, s := range summaries {
			ranked = append(ranked, RankedChannelInfo{Label: s.Label, Value: s.MeanRate})
		}
		results.Channels = append(results.Channels, summaries...)
	}

	slices.SortStableFunc(ranked, func(a, b RankedChannelInfo) int {
		return cmp.Compare(b.Value, a.Value) // Descending
	})
	results.RankedByRate = ranked

	return results, nil
}
