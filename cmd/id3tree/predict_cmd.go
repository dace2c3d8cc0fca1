package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput string
}

type stdoutValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label for a sample answering questions",
		Long:  `Use the loaded tree to predict the label for a sample answering a reduced set of questions about its attributes`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			tree, err := config.loadTree(context.Background(), config.treeInput)
			if err != nil {
				config.fail(2, err)
			}
			prediction, err := bio.PredictFromReader(tree, os.Stdin, stdoutValueRequester{})
			if err != nil {
				config.fail(3, err)
			}
			fmt.Printf("Predicted label is %s\n", prediction)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis URL (redis://host:port/db?key=name) from which the tree will be read (required)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (stdoutValueRequester) RequestValueFor(attribute string, values []string) error {
	_, err := fmt.Printf("Please provide the sample's %s:\n(valid values are %s)\n", attribute, strings.Join(values, ", "))
	return err
}

func (stdoutValueRequester) RejectValueFor(attribute, value string, values []string) error {
	_, err := fmt.Printf("%s is not a valid value for the sample's %s. Please provide one of %s.\n", value, attribute, strings.Join(values, ", "))
	return err
}
