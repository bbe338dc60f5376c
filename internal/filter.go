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

// Package internal builds the frequency domain filters used to isolate the
// FM signal before demodulation.
package internal

import (
	"fmt"

	"hz.tools/rf"
)

// Filter will fill taps with a frequency domain passband mask covering
// [center-deviation, center+deviation], for use with an FFT based
// convolution over IQ samples at the provided sample rate.
//
// Bins are laid out zero frequency first: positive frequencies in the
// lower half of the slice, negative frequencies in the upper half.
func Filter(taps []complex64, sampleRate uint, center rf.Hz, deviation rf.Hz) error {
	if len(taps) == 0 {
		return fmt.Errorf("fm: filter needs at least one tap")
	}
	if deviation <= 0 {
		return fmt.Errorf("fm: filter deviation must be positive")
	}

	var (
		nyquist = rf.Hz(float64(sampleRate) / 2)
		low     = center - deviation
		high    = center + deviation
	)
	if low < -nyquist || high > nyquist {
		return fmt.Errorf("fm: band [%s, %s] extends past half the sample rate", low, high)
	}

	var (
		n        = len(taps)
		binWidth = float64(sampleRate) / float64(n)
	)
	for i := range taps {
		freq := rf.Hz(float64(i) * binWidth)
		if i >= (n+1)/2 {
			freq = rf.Hz(float64(i-n) * binWidth)
		}

		if freq >= low && freq <= high {
			taps[i] = 1
		} else {
			taps[i] = 0
		}
	}
	return nil
}

// vim: foldmethod=marker
