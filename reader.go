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
	"hz.tools/rf"
	"hz.tools/sdr"
	"hz.tools/sdr/fft"
	"hz.tools/sdr/stream"

	"hz.tools/fm/internal"
)

// Reader will allow for the reading of FM demodulated audio samples from
// an IQ stream.
type Reader interface {
	Read([]float32) (int, error)
}

// DemodulatorConfig will define how the demodulator should decode audio from
// the iq data.
type DemodulatorConfig struct {
	// Center frequency of the signal in the IQ data.
	CenterFrequency rf.Hz

	// Deviation is the maximum difference between modulated and carrier
	// frequencies. This is half of the total bandwidth.
	Deviation rf.Hz

	// Downsample will define rate to downsample the samples to bring it to
	// a sensible audio sample rate.
	Downsample uint

	// Planner will be used to perform the FFTs used to filter the FM signal.
	Planner fft.Planner
}

// AudioReader reads demodulated FM audio from an IQ stream, as constructed
// by Demodulate.
type AudioReader struct {
	reader sdr.Reader
	demod  *Demodulator
	config DemodulatorConfig
}

// SampleRate will return the *audio* sample rate.
func (r AudioReader) SampleRate() uint {
	return uint(r.reader.SampleRate())
}

// Read will (partially?) fill the buffer with audio samples.
//
// The Demodulator state persists across calls, so block boundaries produce
// no seams; only the first sample of the whole stream is degenerate, and
// consumers should discard it.
func (r AudioReader) Read(audio []float32) (int, error) {
	buf := make(sdr.SamplesC64, len(audio))
	i, err := sdr.ReadFull(r.reader, buf)
	if err != nil {
		return 0, err
	}
	buf = buf[:i]

	return r.demod.Demod(audio, buf), nil
}

// Demodulate will create a new AudioReader, to read FM audio
// from an IQ stream.
//
// The incoming stream is band filtered to the configured deviation around
// the center frequency, downsampled, and then run through a Demodulator
// constructed against the post-downsample rate.
func Demodulate(reader sdr.Reader, cfg DemodulatorConfig) (*AudioReader, error) {
	var err error

	switch reader.SampleFormat() {
	case sdr.SampleFormatC64:
	default:
		return nil, sdr.ErrSampleFormatMismatch
	}

	filter := make([]complex64, 1024*32)
	if err := internal.Filter(
		filter,
		reader.SampleRate(),
		cfg.CenterFrequency,
		cfg.Deviation,
	); err != nil {
		return nil, err
	}

	reader, err = stream.ConvolutionReader(reader, cfg.Planner, filter)
	if err != nil {
		return nil, err
	}

	reader, err = stream.DownsampleReader(reader, cfg.Downsample)
	if err != nil {
		return nil, err
	}

	demod, err := NewDemodulator(cfg.Deviation, rf.Hz(reader.SampleRate()))
	if err != nil {
		return nil, err
	}

	return &AudioReader{
		reader: reader,
		demod:  demod,
		config: cfg,
	}, nil
}

// vim: foldmethod=marker
