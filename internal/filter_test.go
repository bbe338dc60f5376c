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

package internal

import (
	"testing"
)

func TestFilterPassbandAtCenter(t *testing.T) {
	// 64 taps over 48 KHz is 750 Hz per bin. A 6 KHz deviation around
	// zero covers bins 0..8 and the negative bins 56..63.
	taps := make([]complex64, 64)
	if err := Filter(taps, 48000, 0, 6000); err != nil {
		t.Fatal(err)
	}

	var ones int
	for _, tap := range taps {
		if tap == 1 {
			ones++
		}
	}
	if ones != 17 {
		t.Fatalf("expected 17 passband bins, got %d", ones)
	}

	for _, idx := range []int{0, 8, 56, 63} {
		if taps[idx] != 1 {
			t.Fatalf("bin %d should be in the passband", idx)
		}
	}
	for _, idx := range []int{9, 32, 55} {
		if taps[idx] != 0 {
			t.Fatalf("bin %d should be in the stopband", idx)
		}
	}
}

func TestFilterPassbandOffCenter(t *testing.T) {
	// 32 taps over 48 KHz is 1500 Hz per bin; a 1500 Hz deviation at
	// 6 KHz covers bins 3, 4, and 5 only.
	taps := make([]complex64, 32)
	if err := Filter(taps, 48000, 6000, 1500); err != nil {
		t.Fatal(err)
	}

	for idx, tap := range taps {
		want := complex64(0)
		if idx >= 3 && idx <= 5 {
			want = 1
		}
		if tap != want {
			t.Fatalf("bin %d: expected %v, got %v", idx, want, tap)
		}
	}
}

func TestFilterBounds(t *testing.T) {
	if err := Filter(nil, 48000, 0, 6000); err == nil {
		t.Fatalf("an empty taps buffer should be refused")
	}
	if err := Filter(make([]complex64, 64), 48000, 0, 0); err == nil {
		t.Fatalf("a zero deviation should be refused")
	}
	if err := Filter(make([]complex64, 64), 48000, 20000, 6000); err == nil {
		t.Fatalf("a band past half the sample rate should be refused")
	}

	// The band reaching exactly half the sample rate is allowed.
	if err := Filter(make([]complex64, 64), 48000, 0, 24000); err != nil {
		t.Fatalf("a band at exactly half the sample rate should be allowed: %v", err)
	}
}

// vim: foldmethod=marker
