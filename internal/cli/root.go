package cli

import (
	"fmt"
	"imgadjust/internal/adapters/converter"
	"imgadjust/internal/adapters/encoder"
	"imgadjust/internal/adapters/file"
	"imgadjust/internal/adapters/server"
	"imgadjust/internal/config"
	"imgadjust/internal/core/domain"
	"imgadjust/internal/core/service"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "imgadjust <image-path>",
		Short:         "Serve brightness/contrast adjusted JPEGs of a single source image",
		Args:          exactlyOneImage,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := Bootstrap(args[0], configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default ./config.toml if present)")

	return cmd
}

func exactlyOneImage(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: expected exactly one image path: %w", domain.ErrStartupFailed, err)
	}
	return nil
}

// Bootstrap builds the service graph without binding the listener. Every failure is a startup failure.
func Bootstrap(imagePath, configPath string, logOut io.Writer) (*server.Server, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cfg.ConfigureLogging(logOut)

	log.Info().
		Str("engine", string(cfg.Engine)).
		Str("staging", string(cfg.Staging)).
		Int("quality", cfg.JPEGQuality).
		Msg("starting imgadjust...")

	img, err := file.LoadImage(imagePath)
	if err != nil {
		return nil, err
	}

	store, err := service.NewImageStore(img)
	if err != nil {
		return nil, err
	}

	imageConverter, err := converter.NewConverter(cfg.Engine)
	if err != nil {
		return nil, err
	}

	jpegEncoder, err := encoder.NewJPEGEncoder(cfg.JPEGQuality, cfg.Staging)
	if err != nil {
		return nil, err
	}

	adjuster := service.NewAdjustService(store, imageConverter, jpegEncoder)

	return server.New(adjuster, cfg.CORSOrigins, cfg.ShutdownTimeout), nil
}
