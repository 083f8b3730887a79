package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubCommand couples a cobra command with the viper instance its flags,
// config file entries and environment variables are read through.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}
