package main

import (
	"context"
	"fmt"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	metadataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
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
			tree, err := config.loadTree(ctx, config.treeInput)
			if err != nil {
				config.fail(3, err)
			}
			table, err := config.readTable(ctx, config.dataInput, metadata.Columns())
			if err != nil {
				config.fail(4, err)
			}
			input, err := table.Project(metadata)
			if err != nil {
				config.fail(4, err)
			}
			config.log.WithField("records", len(input.Dataset)).Info("testing tree")
			successRate, errorCount, err := id3.Test(tree, input.Dataset, input.Names, input.TagColumn)
			if err != nil {
				config.fail(5, err)
			}
			fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis URL (redis://host:port/db?key=name) from which the tree to test will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the label column and the attribute columns of the test data (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}
