package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "workload-ingest",
		Short:        "Teaching workload ingestion tools",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}
