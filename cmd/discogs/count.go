package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andaru/discogs/dump"
)

func newCountCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "count <dump>...",
		Short: "Count the records in each dump file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := count(cmd, v, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func count(cmd *cobra.Command, v *viper.Viper, path string) error {
	start := time.Now()
	r, err := dump.Open(path, readerOptions(v)...)
	if err != nil {
		return err
	}
	defer r.Close()
	n, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "after %d %s", n, r)
	}
	elapsed := time.Since(start)
	stats := r.Stats()
	glog.V(1).Infof("%s: %d tokens", path, stats.Tokens)

	rate := float64(n)
	if secs := elapsed.Seconds(); secs > 0 {
		rate /= secs
	}
	read := humanize.Bytes(uint64(stats.Bytes))
	if r.Compressed() {
		read += " gzip"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s in %s (%s records/s, %s read)\n",
		path,
		humanize.Comma(int64(n)),
		r,
		elapsed.Round(time.Millisecond),
		humanize.Commaf(float64(int64(rate))),
		read)
	return nil
}
