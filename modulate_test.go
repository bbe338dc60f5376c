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
	"math"
	"testing"

	"hz.tools/sdr"
)

func TestModulatorNyquistLimit(t *testing.T) {
	if _, err := NewModulator(24000, 48000); err != nil {
		t.Fatalf("deviation at half the sample rate should construct: %v", err)
	}
	if _, err := NewModulator(24001, 48000); err != ErrDeviationTooWide {
		t.Fatalf("deviation past half the sample rate should be refused, got %v", err)
	}
	if _, err := NewModulator(0, 48000); err == nil {
		t.Fatalf("zero deviation should have failed")
	}
}

func TestModulateDemodulateRoundTrip(t *testing.T) {
	// The modulator integrates exactly what the demodulator differences,
	// so a modulate -> demodulate pass must return the input, after the
	// demodulator's degenerate first output.
	mod, err := NewModulator(4000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	demod, err := NewDemodulator(4000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	audio := make([]float32, 512)
	for i := range audio {
		audio[i] = 0.75 * float32(math.Sin(2*math.Pi*440*float64(i)/48000))
	}

	for i, x := range audio {
		out := demod.Feed(mod.Feed(x))
		if i == 0 {
			continue
		}
		if !almostEqual(out, x) {
			t.Fatalf("sample %d: round trip drifted: fed %f, got %f", i, x, out)
		}
	}
}

func TestModulatorFullScalePhaseStep(t *testing.T) {
	// At a quarter of the sample rate deviation, a full scale sample
	// advances the phase by pi/2.
	mod, err := NewModulator(12000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	expected := []complex64{
		complex(0, 1),
		complex(-1, 0),
		complex(0, -1),
		complex(1, 0),
	}
	for i, want := range expected {
		got := mod.Feed(1)
		if !almostEqual(real(got), real(want)) || !almostEqual(imag(got), imag(want)) {
			t.Fatalf("step %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestModulateBlocks(t *testing.T) {
	audio := make([]float32, 200)
	for i := range audio {
		audio[i] = float32(math.Sin(float64(i) * 0.05))
	}

	reference, err := NewModulator(4000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	chunked, err := NewModulator(4000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	want := make(sdr.SamplesC64, len(audio))
	for i, x := range audio {
		want[i] = reference.Feed(x)
	}

	got := make(sdr.SamplesC64, 0, len(audio))
	for i := 0; i < len(audio); i += 77 {
		end := i + 77
		if end > len(audio) {
			end = len(audio)
		}
		block := make(sdr.SamplesC64, end-i)
		if n := chunked.Modulate(block, audio[i:end]); n != end-i {
			t.Fatalf("short modulate: %d of %d", n, end-i)
		}
		got = append(got, block...)
	}

	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("sample %d: block boundary seam: %v vs %v", i, want[i], got[i])
		}
	}
}

// vim: foldmethod=marker
