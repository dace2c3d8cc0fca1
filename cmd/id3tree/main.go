package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// envPrefix is the prefix of the environment variables read by id3tree
const envPrefix = "id3tree"

/*
envConfig holds the settings read from the environment. Flags take
precedence over them.
*/
type envConfig struct {
	LogLevel        string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string  `envconfig:"LOG_FORMAT" default:"text"`
	RedisPrefix     string  `envconfig:"REDIS_PREFIX" default:"id3tree"`
	MongoCollection string  `envconfig:"MONGO_COLLECTION" default:"samples"`
	SQLTable        string  `envconfig:"SQL_TABLE" default:"samples"`
	MinGain         float64 `envconfig:"MIN_GAIN" default:"0"`
	Concurrency     int     `envconfig:"CONCURRENCY" default:"1"`
}

type rootCmdConfig struct {
	verbose bool
	env     *envConfig
	log     *logrus.Logger
}

func main() {
	env := &envConfig{}
	if err := envconfig.Process(envPrefix, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cliParser(env).Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser(env *envConfig) *cobra.Command {
	config := &rootCmdConfig{env: env, log: logrus.New()}
	rootCmd := &cobra.Command{
		Use:   "id3tree",
		Short: "id3tree is a tool to grow ID3 decision trees",
		Long:  `A tool to grow ID3 decision trees from categorical data, test them, and use them to make predictions`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setupLogger()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log every step, including every node grown")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), testCmd(config), setCmd(config))
	return rootCmd
}
