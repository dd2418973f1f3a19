package main

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andaru/discogs/dump"
)

func newJSONCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json <dump>",
		Short: "Print records as JSON, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := dump.Open(args[0], readerOptions(v)...)
			if err != nil {
				return err
			}
			defer r.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			if v.GetBool("indent") {
				enc.SetIndent("", "  ")
			}
			limit := v.GetInt("limit")
			for n := 0; limit <= 0 || n < limit; n++ {
				rec, err := r.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				if err := enc.Encode(rec); err != nil {
					return errors.WithStack(err)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "maximum number of records to print, 0 for all")
	cmd.Flags().Bool("indent", false, "indent the output")
	return cmd
}
