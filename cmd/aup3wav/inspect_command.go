// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/aup3wav/project"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the container structure of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := project.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := [][]string{
				{"File", in.Path},
				{"Tables", strings.Join(in.Tables, ", ")},
				{"Block table", yesNo(in.HasBlockStore)},
			}
			if in.HasBlockStore {
				rows = append(rows,
					[]string{"Columns", strings.Join(in.Columns, ", ")},
					[]string{"Blocks", strconv.Itoa(in.BlockCount)},
				)
				if in.BlockCount > 0 {
					rows = append(rows,
						[]string{"First block", strconv.FormatInt(in.FirstBlockID, 10)},
						[]string{"First block has samples", yesNo(in.FirstHasData)},
					)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Property", "Value"}, rows, nil))
			return nil
		},
	}
}
