package main

import (
	"context"
	"fmt"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	setOutput     string
	metadataInput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Dump a set into a different format",
		Long:  `Dump a set from a CSV file, SQLite3 file, PostgreSQL or MongoDB DB into another of those`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			ctx := context.Background()
			var columns []string
			if config.metadataInput != "" {
				metadata, err := bio.ReadYMLMetadataFromFile(config.metadataInput)
				if err != nil {
					config.fail(2, err)
				}
				columns = metadata.Columns()
			}
			table, err := config.readTable(ctx, config.setInput, columns)
			if err != nil {
				config.fail(3, err)
			}
			err = config.writeTable(ctx, config.setOutput, table)
			if err != nil {
				config.fail(4, err)
			}
			config.log.WithField("rows", len(table.Rows)).Info("set dumped")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the set to dump (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the set into (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file whose label and attributes are the only columns to dump")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setInput != "" && scc.setInput == scc.setOutput {
		return fmt.Errorf("input and output refer to the same set %s", scc.setInput)
	}
	return nil
}
