// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2022
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

package fm

import (
	"fmt"
	"math"
	"math/cmplx"

	"hz.tools/rf"
	"hz.tools/sdr"
)

var (
	// BroadcastDeviation is the max deviation for FM Broadcast
	// which is 75 KHz (150 KHz bandwidth).
	BroadcastDeviation rf.Hz = rf.KHz * 75

	// NarrowbandDeviation is the max deviation for FM narrowband radio, like
	// Ham radios, 2.5 KHz (5 KHz bandwidth)
	NarrowbandDeviation rf.Hz = rf.KHz * 2.5

	// ErrDeviationTooWide will be returned when the requested deviation
	// exceeds half the sample rate. Past the Nyquist limit the per-sample
	// phase step wraps ambiguously, so construction refuses to proceed.
	ErrDeviationTooWide = fmt.Errorf("fm: deviation exceeds half the sample rate")
)

// Demodulator recovers the modulating signal from an FM phasor stream, one
// sample at a time, by measuring the phase difference between consecutive
// samples (see the package documentation for the derivation).
//
// A Demodulator is plain mutable state owned by a single stream. It carries
// no locking; demodulating channels in parallel requires one Demodulator
// per channel.
type Demodulator struct {
	// gain is the reciprocal of the angular frequency deviation in
	// radians per sample, fixed at construction.
	gain float32

	// prev is the last phasor fed in, p[t-1].
	prev complex64
}

// NewDemodulator will create a Demodulator for signals deviating up to
// deviation from center, fed phasors at sampleRate.
//
// Both must be positive, and the deviation must respect the Nyquist limit:
// at most half the sample rate. Either violation returns an error rather
// than constructing a Demodulator with an unusable gain.
func NewDemodulator(deviation rf.Hz, sampleRate rf.Hz) (*Demodulator, error) {
	if deviation <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("fm: deviation and sample rate must be positive")
	}
	if deviation > sampleRate/2 {
		return nil, ErrDeviationTooWide
	}
	return &Demodulator{
		gain: float32(1 / (2 * math.Pi * float64(deviation) / float64(sampleRate))),
	}, nil
}

// Feed will consume the next phasor in the stream, returning the next sample
// of the demodulated signal.
//
// The very first call after construction compares the incoming phasor
// against an implicit zero value, so its return is degenerate (zero, the
// conventional argument of a zero magnitude phasor) and should be
// discarded. Every later call returns a meaningful value; a signal staying
// within the configured deviation lands in about [-1, 1], but values are
// not clamped.
func (d *Demodulator) Feed(sample complex64) float32 {
	phasor := complex128(sample)
	lastPhasor := complex128(d.prev)
	d.prev = sample
	return float32(cmplx.Phase(phasor*cmplx.Conj(lastPhasor))) * d.gain
}

// Demod will demodulate a block of IQ samples into audio, returning the
// number of samples processed (the shorter of the two buffers). State
// carries across calls, so a stream may be processed in blocks of any size
// without seams at the boundaries.
func (d *Demodulator) Demod(audio []float32, iq sdr.SamplesC64) int {
	n := len(iq)
	if len(audio) < n {
		n = len(audio)
	}
	for i := 0; i < n; i++ {
		audio[i] = d.Feed(iq[i])
	}
	return n
}

// vim: foldmethod=marker
