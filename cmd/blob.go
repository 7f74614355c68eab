package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/farzaaaan/dupnames/cmd/scan"
)

func newBlobCmd(opts *scanOptions) *cobra.Command {
	var (
		storageAccount    string
		container         string
		storageAccountKey string
		prefix            string
	)

	blobCmd := &cobra.Command{
		Use:   "blob",
		Short: "Find blob names sharing the same file name in a container",
		Long:  "List an Azure Storage container and report every file name that appears under more than one blob path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, container, func(log *zap.Logger) (scan.Source, error) {
				return scan.NewBlobSource(storageAccount, container, storageAccountKey, prefix, log)
			})
		},
	}

	blobCmd.Flags().StringVar(&storageAccount, "storage-account", "", "Azure Storage Account Name")
	blobCmd.Flags().StringVar(&container, "container", "", "Azure Storage Container Name")
	blobCmd.Flags().StringVar(&storageAccountKey, "storage-account-key", "", "Azure Storage Account Key")
	blobCmd.Flags().StringVar(&prefix, "prefix", "", "Only list blobs whose name starts with this prefix")
	blobCmd.MarkFlagRequired("storage-account")
	blobCmd.MarkFlagRequired("container")
	blobCmd.MarkFlagRequired("storage-account-key")

	return blobCmd
}
