package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/triedo"
	"github.com/hupe1980/triedo/command"
	"github.com/hupe1980/triedo/internal/resource"
	"github.com/hupe1980/triedo/runner"
)

func newBatchCmd(g *globalFlags) *cobra.Command {
	var flags indexFlags
	var all bool
	var source string
	var concurrency int
	var ioLimit int64

	cmd := &cobra.Command{
		Use:   "batch [jobs...]",
		Short: "Execute job files from a blob store",
		Long: `Execute batch jobs. Each job <name> reads <name>.in (optionally .zst or .lz4
compressed) and writes <name>.out with the same compression.

A job stops at the first malformed line and publishes no output.

Sources:
  ./jobs                  local directory
  s3://bucket/prefix      Amazon S3 (default AWS credential chain)
  minio://bucket/prefix   MinIO (see the minio config section)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("name jobs or pass --all, not both")
			}

			cfg, err := g.load()
			if err != nil {
				return err
			}
			if source != "" {
				cfg.Batch.Source = source
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Batch.Concurrency = concurrency
			}
			if cmd.Flags().Changed("io-limit") {
				cfg.Batch.IOLimitBytesPerSec = ioLimit
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := openSource(ctx, cfg)
			if err != nil {
				return err
			}

			logger := cfg.Logger()
			format, _ := command.ParseFormat(cfg.Batch.Format)
			b := runner.NewBatch(store,
				runner.WithListOptions(append(cfg.ListOptions(), triedo.WithLogger(logger))...),
				runner.WithFormat(format),
				runner.WithCodec(cfg.OutputCodec()),
				runner.WithLogger(logger),
				runner.WithController(resource.NewController(resource.Config{
					MaxJobs:            int64(cfg.Batch.Concurrency),
					IOLimitBytesPerSec: cfg.Batch.IOLimitBytesPerSec,
				})),
			)

			jobs := args
			if all {
				if jobs, err = b.Discover(ctx); err != nil {
					return err
				}
			}
			if len(jobs) == 0 {
				return fmt.Errorf("no jobs found in %s", cfg.Batch.Source)
			}

			if err := b.Run(ctx, jobs...); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d job(s) completed\n", len(jobs))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Run every job found in the source")
	cmd.Flags().StringVar(&source, "source", "", "Job location: directory, s3://bucket/prefix or minio://bucket/prefix")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum concurrent jobs")
	cmd.Flags().Int64Var(&ioLimit, "io-limit", 0, "Blob IO limit in bytes per second (0 = unlimited)")

	return cmd
}
