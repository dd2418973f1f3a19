package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andaru/discogs/dump"
	"github.com/andaru/discogs/schema"
	"github.com/andaru/discogs/source"
)

const envPrefix = "discogs"

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "discogs",
		Short:         "Read Discogs XML data dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			return v.BindPFlags(cmd.Flags())
		},
	}
	flags := cmd.PersistentFlags()
	flags.Int("buffer-size", source.DefaultBufferSize, "read buffer size in `bytes`")
	flags.Int("max-depth", schema.DefaultMaxDepth, "maximum element nesting `depth` within a record")
	flags.Bool("strict", true, "reject unknown entities and unquoted attributes")
	flags.Bool("html-entities", true, "decode HTML character entities")

	cmd.AddCommand(newCountCmd(v), newJSONCmd(v), newDetectCmd(v))
	return cmd
}

func readerOptions(v *viper.Viper) []dump.Option {
	return []dump.Option{
		dump.WithBufferSize(v.GetInt("buffer-size")),
		dump.WithMaxDepth(v.GetInt("max-depth")),
		dump.WithStrict(v.GetBool("strict")),
		dump.WithHTMLEntities(v.GetBool("html-entities")),
	}
}
