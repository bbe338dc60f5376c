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

	"hz.tools/rf"
	"hz.tools/sdr"
)

// Modulator is the inverse of the Demodulator: it integrates a modulating
// signal into an accumulated phase (a Riemann sum of the angular frequency
// deviation scaled by each sample) and emits the corresponding unit
// phasors.
//
// Feeding the resulting phasors through a Demodulator constructed with the
// same deviation and sample rate returns the modulating signal, after the
// first (degenerate) output.
//
// Like the Demodulator, a Modulator is single owner mutable state with no
// internal locking.
type Modulator struct {
	// gain is the angular frequency deviation in radians per sample,
	// the phase step produced by a full scale modulating sample.
	gain float64

	// phase is the accumulated phase, kept wrapped to (-pi, pi] so long
	// streams lose no precision.
	phase float64
}

// NewModulator will create a Modulator producing phasors at sampleRate for
// a signal deviating up to deviation from center. The parameters obey the
// same Nyquist constraint as NewDemodulator.
func NewModulator(deviation rf.Hz, sampleRate rf.Hz) (*Modulator, error) {
	if deviation <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("fm: deviation and sample rate must be positive")
	}
	if deviation > sampleRate/2 {
		return nil, ErrDeviationTooWide
	}
	return &Modulator{
		gain: 2 * math.Pi * float64(deviation) / float64(sampleRate),
	}, nil
}

// Feed will consume the next sample of the modulating signal, returning the
// next phasor of the modulated stream.
func (m *Modulator) Feed(x float32) complex64 {
	m.phase = math.Remainder(m.phase+m.gain*float64(x), 2*math.Pi)
	return complex(float32(math.Cos(m.phase)), float32(math.Sin(m.phase)))
}

// Modulate will modulate a block of audio samples into IQ, returning the
// number of samples processed (the shorter of the two buffers). Phase
// carries across calls.
func (m *Modulator) Modulate(iq sdr.SamplesC64, audio []float32) int {
	n := len(audio)
	if len(iq) < n {
		n = len(iq)
	}
	for i := 0; i < n; i++ {
		iq[i] = m.Feed(audio[i])
	}
	return n
}

// vim: foldmethod=marker
