package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "rdfterm",
	Short: "rdfterm: RDF term values, ordering and indexes",
	Long: `
rdfterm works with RDF term values in their textual literal syntax
'text'^^hexid or in N-Triples style (<iri>, _:b0, "chat"@fr,
"42"^^xsd:integer). Language tags and datatype IRIs are mapped to type
ids by a catalog kept next to the term index in --dir.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var rootConf = viper.New()

var subcommands = []*SubCommand{
	&Parse, &Compare, &Sort, &Hash, &Encode, &Decode, &Eval, &Index, &Types,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().String("dir", "rdfterm_data",
		"Directory holding the term index and type catalog.")
	RootCmd.PersistentFlags().Bool("in_memory", false,
		"Keep the index and catalog in memory only. --dir is ignored.")
	RootCmd.PersistentFlags().Bool("sync_writes", false,
		"Wait for every index write to reach disk.")
	RootCmd.PersistentFlags().String("locale", "en",
		"Collation locale for text terms.")
	RootCmd.PersistentFlags().Int64("cache_mb", 64,
		"Size of the decoded term cache in MB. 0 disables the cache.")
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	if err := rootConf.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		glog.Fatalf("Unable to bind persistent flags: %v", err)
	}
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		if err := sc.Conf.BindPFlags(sc.Cmd.Flags()); err != nil {
			glog.Fatalf("Unable to bind flags for command %s: %v", sc.Cmd.Name(), err)
		}
		if err := sc.Conf.BindPFlags(RootCmd.PersistentFlags()); err != nil {
			glog.Fatalf("Unable to bind persistent flags from root for command %s: %v", sc.Cmd.Name(), err)
		}
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		sc.Conf.AutomaticEnv()
	}

	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				glog.Fatalf("Unable to read config file %s: %v", cfg, err)
			}
		}
	})
}
