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
	"os"

	"github.com/spf13/cobra"

	"hz.tools/rf"
)

var rootCmd = &cobra.Command{
	Use:   "fm",
	Short: "demodulate and modulate fm signals",
}

// parseBandwidth turns a bandwidth flag value into the deviation (half the
// bandwidth), accepting the "broadcast" and "narrowband" shorthands.
func parseBandwidth(bandwidthStr string) (rf.Hz, error) {
	switch bandwidthStr {
	case "broadcast":
		bandwidthStr = "150KHz"
	case "narrowband":
		bandwidthStr = "5KHz"
	}

	bandwidth, err := rf.ParseHz(bandwidthStr)
	if err != nil {
		return rf.Hz(0), err
	}
	return bandwidth / 2, nil
}

func main() {
	rootCmd.AddCommand(rxCmd)
	rootCmd.AddCommand(txCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// vim: foldmethod=marker
