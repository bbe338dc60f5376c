// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2023
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hz.tools/fftw"
	"hz.tools/fm"
	"hz.tools/pulseaudio"
	"hz.tools/rf"
	"hz.tools/rfcap"
	"hz.tools/sdr"
	"hz.tools/sdr/stream"
)

var rxCmd = &cobra.Command{
	Use:   "rx",
	Short: "listen to an fm signal from an rfcap stream on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		sinkName, err := flags.GetString("sink-name")
		if err != nil {
			return err
		}

		bandwidthStr, err := flags.GetString("bandwidth")
		if err != nil {
			return err
		}

		gain, err := flags.GetFloat32("gain")
		if err != nil {
			return err
		}

		downsample, err := flags.GetUint("downsample")
		if err != nil {
			return err
		}

		deviation, err := parseBandwidth(bandwidthStr)
		if err != nil {
			return err
		}

		reader, _, err := rfcap.Reader(os.Stdin)
		if err != nil {
			return err
		}

		reader, err = stream.ConvertReader(reader, sdr.SampleFormatC64)
		if err != nil {
			return err
		}

		demod, err := fm.Demodulate(reader, fm.DemodulatorConfig{
			CenterFrequency: rf.Hz(0),
			Deviation:       deviation,
			Downsample:      downsample,
			Planner:         fftw.Plan,
		})
		if err != nil {
			return err
		}

		speaker, err := pulseaudio.NewWriter(pulseaudio.Config{
			Format:     pulseaudio.SampleFormatFloat32NE,
			Rate:       demod.SampleRate(),
			AppName:    "rf",
			StreamName: "fm",
			Channels:   1,
			SinkName:   sinkName,
		})
		if err != nil {
			return err
		}

		buf := make([]float32, 1024*64)
		for {
			i, err := demod.Read(buf)
			if err != nil {
				return err
			}
			if i == 0 {
				return fmt.Errorf("zero read")
			}
			for j := 0; j < i; j++ {
				buf[j] *= gain
			}
			if err := speaker.Write(buf[:i]); err != nil {
				return err
			}
		}
	},
}

func init() {
	flags := rxCmd.Flags()

	flags.String("bandwidth", "broadcast", "Bandwidth for the fm signal [broadcast|narrowband|<hz>]")
	flags.Uint("downsample", 8, "Samples to downsample for audio playback")
	flags.String("sink-name", "", "pulseaudio sink name")
	flags.Float32("gain", 0.75, "amount of gain on the signal")
}

// vim: foldmethod=marker
