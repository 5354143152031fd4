package loudness

// Params controls the two-stage level adjustment.
type Params struct {
	// HeadroomDB is how far below full scale peak normalization stops.
	HeadroomDB float64
	// TargetDBFS is the average (RMS) level the flat gain shift aims for.
	TargetDBFS float64
}

// Stats records levels around each stage.
type Stats struct {
	PeakBefore  float64
	LevelBefore float64
	PeakGain    float64
	TargetGain  float64
	PeakAfter   float64
	LevelAfter  float64
}

// Process peak-normalizes the segment and then shifts the whole signal by a
// flat gain toward the target average level. Samples that the shift pushes
// past full scale are clipped. Silent input returns ErrSilent.
func Process(s Segment, p Params) (Segment, Stats, error) {
	stats := Stats{
		PeakBefore:  s.MaxDBFS(),
		LevelBefore: s.DBFS(),
	}

	peakGain, ok := PeakGain(s, p.HeadroomDB)
	if !ok {
		return Segment{}, stats, ErrSilent
	}
	stats.PeakGain = peakGain
	normalized := s.ApplyGain(peakGain)

	shift, err := TargetGain(normalized, p.TargetDBFS)
	if err != nil {
		return Segment{}, stats, err
	}
	stats.TargetGain = shift
	out := normalized.ApplyGain(shift)

	stats.PeakAfter = out.MaxDBFS()
	stats.LevelAfter = out.DBFS()
	return out, stats, nil
}
