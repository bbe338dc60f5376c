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
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"hz.tools/fm"
	"hz.tools/rf"
	"hz.tools/sdr"
)

const txChunkSize = 1024 * 16

var txCmd = &cobra.Command{
	Use:   "tx audio.wav",
	Short: "modulate a wav file, writing raw complex64 IQ to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bandwidthStr, err := cmd.Flags().GetString("bandwidth")
		if err != nil {
			return err
		}

		deviation, err := parseBandwidth(bandwidthStr)
		if err != nil {
			return err
		}

		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		decoder := wav.NewDecoder(fd)
		if !decoder.IsValidFile() {
			return fmt.Errorf("fm: %q is not a wav file", args[0])
		}
		if err := decoder.FwdToPCM(); err != nil {
			return err
		}

		mod, err := fm.NewModulator(deviation, rf.Hz(decoder.SampleRate))
		if err != nil {
			return err
		}

		var (
			channels = int(decoder.NumChans)
			scale    = float32(int(1) << (decoder.BitDepth - 1))

			pcm = &audio.IntBuffer{
				Format: decoder.Format(),
				Data:   make([]int, txChunkSize*channels),
			}
			iq = make(sdr.SamplesC64, txChunkSize)
		)

		for {
			n, err := decoder.PCMBuffer(pcm)
			if err == io.EOF || n == 0 {
				return nil
			}
			if err != nil {
				return err
			}

			// Interleaved PCM; modulate the first channel only.
			frames := n / channels
			for i := 0; i < frames; i++ {
				iq[i] = mod.Feed(float32(pcm.Data[i*channels]) / scale)
			}

			if err := binary.Write(os.Stdout, binary.LittleEndian, iq[:frames]); err != nil {
				return err
			}
		}
	},
}

func init() {
	flags := txCmd.Flags()

	flags.String("bandwidth", "broadcast", "Bandwidth for the fm signal [broadcast|narrowband|<hz>]")
}

// vim: foldmethod=marker
