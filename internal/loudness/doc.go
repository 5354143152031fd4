// Package loudness measures and rescales 16-bit PCM.
//
// Levels are expressed in dBFS against a full scale of 32768. Processing
// happens in two stages: peak normalization to just under full scale, then a
// flat gain shift that steers the RMS level toward a target such as -16 dBFS.
// The second stage is an approximation of loudness normalization, not an
// EBU R128 / LUFS measurement, and it clips rather than limits when a quiet
// file needs more gain than its peaks allow.
package loudness
