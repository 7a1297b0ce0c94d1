// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/aup3wav/formats/wav"
)

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "probe <file.wav>",
		Short:       "Show the header of a WAV file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := wav.Probe(args[0])
			if err != nil {
				return err
			}
			st, err := os.Stat(args[0])
			if err != nil {
				return err
			}

			rows := [][]string{
				{"File", args[0]},
				{"Size", humanize.IBytes(uint64(st.Size()))},
				{"Sample rate", strconv.Itoa(info.SampleRate) + " Hz"},
				{"Channels", strconv.Itoa(info.Channels)},
				{"Bit depth", strconv.Itoa(info.BitDepth)},
				{"Samples", humanize.Comma(int64(info.Samples))},
				{"Duration", info.Duration.String()},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Property", "Value"}, rows, nil))
			return nil
		},
	}
}
