package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/swtile/sequence"
)

func (c *CLI) fastaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fasta <a.fa> <b.fa>",
		Short: "Score the first record of two FASTA files",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError(cmd, "expected two FASTA files, got %d", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFASTA(cmd, args[0], args[1])
		},
	}
}

func (c *CLI) runFASTA(cmd *cobra.Command, pathA, pathB string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := c.flags.resolve(cmd)
	if err != nil {
		return err
	}
	a, err := sequence.ReadFirstFASTA(pathA)
	if err != nil {
		return err
	}
	b, err := sequence.ReadFirstFASTA(pathB)
	if err != nil {
		return err
	}
	logger.Debug("read FASTA records", "a", a.ID, "len_a", len(a.Seq), "b", b.ID, "len_b", len(b.Seq))

	score, elapsed, err := align(logger, cfg, a.Seq, b.Seq, c.flags.verify)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), report{len1: len(a.Seq), len2: len(b.Seq), score: score, elapsed: elapsed})
}
