package main

import (
	"context"
	"fmt"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	output        string
	minGain       float64
	concurrency   int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow an ID3 decision tree from a set of data to predict its label column.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			ctx := context.Background()
			metadata, err := bio.ReadYMLMetadataFromFile(config.metadataInput)
			if err != nil {
				config.fail(2, err)
			}
			table, err := config.readTable(ctx, config.dataInput, metadata.Columns())
			if err != nil {
				config.fail(3, err)
			}
			input, err := table.Project(metadata)
			if err != nil {
				config.fail(4, err)
			}
			log := config.log.WithField("label", metadata.Label)
			log.WithField("records", len(input.Dataset)).Info("growing tree")
			grower := &id3.Grower{
				TagColumn:   input.TagColumn,
				MinGain:     config.minGain,
				Concurrency: config.concurrency,
				Logger:      config.log,
			}
			tree, err := grower.Grow(input.Dataset, input.Names)
			if err != nil {
				config.fail(5, err)
			}
			log.WithField("depth", tree.Depth()).WithField("leaves", tree.Leaves()).Info("tree grown")
			log.Debugf("grown tree:\n%v", tree)
			err = config.saveTree(ctx, config.output, tree)
			if err != nil {
				config.fail(6, err)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the label column and the attribute columns to grow the tree with (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or redis URL (redis://host:port/db?key=name) to which the tree will be written in JSON (defaults to STDOUT)")
	cmd.PersistentFlags().Float64Var(&(config.minGain), "min-gain", rootConfig.env.MinGain, "information gain an attribute must exceed to split a node")
	cmd.PersistentFlags().IntVar(&(config.concurrency), "concurrency", rootConfig.env.Concurrency, "maximum number of attributes evaluated at the same time for a node")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if gcc.minGain < 0 {
		return fmt.Errorf("min-gain cannot be negative, got %v", gcc.minGain)
	}
	return nil
}
