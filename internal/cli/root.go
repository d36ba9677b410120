package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Domenick1991/aerolinea/config"
	"github.com/Domenick1991/aerolinea/internal/bootstrap"
	"github.com/Domenick1991/aerolinea/internal/repository"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// storageFlags let one invocation read or write a backend other than the
// one in the config file.
type storageFlags struct {
	configPath string
	driver     string
	filePath   string
}

func NewRootCmd() *cobra.Command {
	flags := &storageFlags{}

	cmd := &cobra.Command{
		Use:          "airlinectl",
		Short:        "Inspect and move the airline dataset",
		SilenceUsage: true,
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "config.yaml"
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", defaultConfig, "Path to config.yaml")
	cmd.PersistentFlags().StringVar(&flags.driver, "driver", "", "Override storage.driver (file, postgres, memory)")
	cmd.PersistentFlags().StringVar(&flags.filePath, "file", "", "Override storage.file_path")

	cmd.AddCommand(exportCmd(flags), importCmd(flags), statsCmd(flags))
	return cmd
}

func (f *storageFlags) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.driver != "" {
		cfg.Storage.Driver = f.driver
	}
	if f.filePath != "" {
		cfg.Storage.FilePath = f.filePath
	}
	return cfg, nil
}

func (f *storageFlags) open(ctx context.Context) (repository.DatasetRepository, func(), error) {
	cfg, err := f.load()
	if err != nil {
		return nil, nil, err
	}
	return bootstrap.NewDatasetRepository(ctx, cfg)
}
