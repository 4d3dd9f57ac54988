package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineage/internal/pipeline"
	"github.com/iw2rmb/lineage/relation"
)

func newDumpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Run one pass and print every output character with its provenance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, compiled, log, err := setup(cmd, *opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			res := compiled.Run(text, log)
			return writeDump(cmd.OutOrStdout(), res)
		},
	}
}

func writeDump(w io.Writer, res *pipeline.Result) error {
	rel := res.Pass.Relation()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "char", "id", "up", "down")

	i := 0
	for id, c := range res.Output.Chars() {
		inv, _ := rel.Inverse(id)
		fwd, _ := rel.Forward(id)
		t.Row(strconv.Itoa(i), strconv.QuoteRune(c), strconv.FormatUint(uint64(id), 10), formatIDs(inv), formatIDs(fwd))
		i++
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", res.Output.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatIDs(s *relation.Set) string {
	ids := s.IDs()
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}
