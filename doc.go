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

// Package fm demodulates (and modulates) Frequency Modulated signals
// carried in an IQ stream, using a phase difference approximation.
//
// # Theory
//
// The classical equation for an FM signal is
//
//	s(t) = a(t) cos(wc*t + phi(t))
//
// where wc is the carrier, and the phase term integrates the modulating
// signal x(t) scaled by the angular frequency deviation wd:
//
//	phi(t) = wd * integral(x(tau) dtau)
//
// Differentiating the phase gives back the modulating signal:
//
//	x(t) = (1/wd) * dphi(t)/dt
//
// In discrete time the derivative becomes a backward difference over one
// sample period, so recovering x only requires the change in phase between
// the current and previous sampling instants:
//
//	x[t] = (1/wd) * (phi[t] - phi[t-1])
//
// At baseband each IQ sample is a phasor p[t] with argument phi[t]. Rather
// than computing each argument (and then having to unwrap the difference
// across the +/- pi boundary), the identities arg(uv) = arg(u) + arg(v) and
// arg(conj(u)) = -arg(u) let the wrapped difference fall out of a single
// complex multiply:
//
//	arg(p[t] * conj(p[t-1])) = phi[t] - phi[t-1]
//
// which leads to the per sample computation performed by the Demodulator:
//
//	x[t] = (1/wd) * arg(p[t] * conj(p[t-1]))
//
// The wrap at +/- pi is the correct behavior, not an error: as long as the
// deviation respects the Nyquist limit (no more than half the sample rate),
// the true per sample phase step is itself bounded by pi. The amplitude
// a(t) drops out entirely, since the complex argument does not depend on
// magnitude.
//
// Reference: J.M. Shima, "FM demodulation using a digital radio and digital
// signal processing", 1995.
package fm

// vim: foldmethod=marker
