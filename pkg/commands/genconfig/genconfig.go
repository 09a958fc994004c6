// Package genconfig implements the gen-config command, which prints or
// writes a starter project configuration file.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/rasviitanen/svgmacro/pkg/output"
)

// ProjectFileName is the file written into a project directory
const ProjectFileName = ".svgmacro.toml"

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Dirs receive a config file each when Write is set
	Dirs  []string
	Write bool
}

// GenConfigResult holds the generated content and the files written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
	FilesSkipped  []string
}

// GenConfig returns the default configuration with every value commented
// out and, with Write, stores it in each directory that has no project
// file yet. Without directories the current directory is used.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	dirs := opts.Dirs
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	for _, dir := range dirs {
		target := filepath.Join(dir, ProjectFileName)

		if _, err := os.Stat(target); err == nil {
			logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
			result.FilesSkipped = append(result.FilesSkipped, target)
			continue
		} else if !os.IsNotExist(err) {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to check %s", target).
				WithDetail("path", target)
		}

		if err := output.WriteFile(target, []byte(result.ConfigContent)); err != nil {
			return result, err
		}

		logger.Info().Str("path", target).Msg("Written config file")
		result.FilesWritten = append(result.FilesWritten, target)
	}

	return result, nil
}
