// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/aup3wav/audio"
	"github.com/ik5/aup3wav/batch"
	"github.com/ik5/aup3wav/internal/config"
)

type convertFlags struct {
	malformed string
	verify    bool
	workers   int
	noLock    bool
	sourceExt string
	outputExt string
	quiet     bool
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [root]",
		Short: "Convert every project file one folder below root",
		Long: "Convert every project file found in the immediate subdirectories of root to a WAV\n" +
			"written beside it. Existing outputs are skipped, so an interrupted run can be repeated.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			bcfg, err := batchConfig(cmd, cfg, flags, args)
			if err != nil {
				return err
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			report, err := batch.New(bcfg, logger).Run(cmd.Context())
			if report != nil {
				printReport(cmd, report, flags.quiet)
			}
			if err != nil {
				return err
			}

			if n := report.Count(batch.Failed); n > 0 {
				return fmt.Errorf("%d of %d files failed", n, report.Total())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.malformed, "malformed", "", "Malformed block policy (skip, fail)")
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "Read every written WAV back and check it")
	cmd.Flags().IntVarP(&flags.workers, "workers", "j", 0, "Files converted concurrently")
	cmd.Flags().BoolVar(&flags.noLock, "no-lock", false, "Do not lock the root directory")
	cmd.Flags().StringVar(&flags.sourceExt, "source-ext", "", "Project file extension")
	cmd.Flags().StringVar(&flags.outputExt, "output-ext", "", "Output file extension")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only print the summary")

	return cmd
}

// batchConfig merges the configuration file with command line overrides.
func batchConfig(cmd *cobra.Command, cfg *config.Config, flags convertFlags, args []string) (batch.Config, error) {
	conv := cfg.Convert

	if len(args) == 1 {
		conv.Root = args[0]
	}
	if conv.Root == "" {
		return batch.Config{}, errors.New("root directory required: pass it as an argument or set convert.root")
	}
	root, err := config.ExpandPath(conv.Root)
	if err != nil {
		return batch.Config{}, err
	}

	set := cmd.Flags().Changed
	if set("malformed") {
		conv.Malformed = flags.malformed
	}
	if set("verify") {
		conv.Verify = flags.verify
	}
	if set("workers") {
		conv.Workers = flags.workers
	}
	if set("no-lock") {
		conv.Lock = !flags.noLock
	}
	if set("source-ext") {
		conv.SourceExt = flags.sourceExt
	}
	if set("output-ext") {
		conv.OutputExt = flags.outputExt
	}

	conv.SourceExt = dotted(strings.TrimSpace(conv.SourceExt))
	conv.OutputExt = dotted(strings.TrimSpace(conv.OutputExt))
	conv.Malformed = strings.ToLower(strings.TrimSpace(conv.Malformed))

	override := config.Config{Convert: conv, Logging: cfg.Logging}
	if err := override.Validate(); err != nil {
		return batch.Config{}, err
	}

	policy, err := audio.ParsePolicy(conv.Malformed)
	if err != nil {
		return batch.Config{}, err
	}

	return batch.Config{
		Root:      root,
		SourceExt: conv.SourceExt,
		OutputExt: conv.OutputExt,
		Policy:    policy,
		Verify:    conv.Verify,
		Workers:   conv.Workers,
		Lock:      conv.Lock,
	}, nil
}

func dotted(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

func printReport(cmd *cobra.Command, report *batch.Report, quiet bool) {
	out := cmd.OutOrStdout()

	if !quiet && report.Total() > 0 {
		rows := make([][]string, 0, report.Total())
		for _, e := range report.Entries {
			rows = append(rows, []string{
				e.Folder,
				filepath.Base(e.Source),
				e.Outcome.String(),
				entryDuration(e),
				entrySize(e),
				entryDetail(e),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Folder", "File", "Outcome", "Length", "Size", "Detail"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		))
	}

	fmt.Fprintf(out, "RESULT: %s\n", report.Summary())

	switch {
	case report.Total() == 0:
		fmt.Fprintf(out, "No project files found below %s\n", report.Root)
	case report.NeedsRemediation():
		fmt.Fprintln(out)
		fmt.Fprintln(out, batch.Remediation)
	}
}

func entryDuration(e batch.Entry) string {
	if e.Outcome != batch.Converted {
		return ""
	}
	return e.Duration.Round(time.Millisecond).String()
}

func entrySize(e batch.Entry) string {
	if e.Outcome != batch.Converted {
		return ""
	}
	return humanize.IBytes(uint64(e.Bytes))
}

func entryDetail(e batch.Entry) string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Outcome == batch.SkippedExists:
		return filepath.Base(e.Output) + " exists"
	case e.Stats.Malformed() > 0:
		return fmt.Sprintf("%d malformed blocks skipped", e.Stats.Malformed())
	}
	return ""
}
