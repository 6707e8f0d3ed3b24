package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/capyflow/iniq/parse/ini"
	"github.com/capyflow/iniq/pkg"
	"github.com/spf13/cobra"
)

type IniParams struct {
	Input     string `json:"input"`     // input file path
	Key       string `json:"key"`       // key to look up
	Section   string `json:"section"`   // section name, empty for unscoped lookup
	Output    string `json:"output"`    // output path for the re-rendered file
	Verbosity string `json:"verbosity"` // silent | warnings | debug
}

var iniParams *IniParams

var iniCmd = &cobra.Command{
	Use:           "ini",
	Short:         "ini lookup and parse tools",
	RunE:          iniRun,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	iniParams = &IniParams{}
	iniCmd.Flags().StringVarP(&iniParams.Input, "input", "i", "", "input file path")
	iniCmd.Flags().StringVarP(&iniParams.Key, "key", "k", "", "key to look up")
	iniCmd.Flags().StringVarP(&iniParams.Section, "section", "s", "", "section name, leave empty to search the whole file")
	iniCmd.Flags().StringVarP(&iniParams.Output, "output", "o", "", "write the re-rendered file to this path")
	iniCmd.Flags().StringVar(&iniParams.Verbosity, "verbosity", "warnings", "log verbosity: silent, warnings or debug")
}

func setupLogging(verbosity string) {
	switch verbosity {
	case "silent":
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	case "debug":
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	default:
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}
}

func iniRun(cmd *cobra.Command, args []string) error {
	setupLogging(iniParams.Verbosity)

	if len(iniParams.Input) == 0 {
		return errors.New("no input file path")
	}
	exist, err := pkg.CheckFileExist(iniParams.Input)
	if err != nil {
		return fmt.Errorf("check file exist error: %w", err)
	}
	if !exist {
		return errors.New("input file not exist")
	}
	if filepath.Ext(iniParams.Input) != ".ini" {
		slog.Warn("specified file does not have an .ini extension")
	}

	// Try to read the file regardless
	contents, err := pkg.ReadFileString(iniParams.Input)
	if err != nil {
		return err
	}

	if len(iniParams.Output) > 0 {
		file, err := ini.Parse(strings.NewReader(contents))
		if err != nil {
			return err
		}
		if err := pkg.WriteFileString(iniParams.Output, file.String()); err != nil {
			return err
		}
	}

	if len(iniParams.Key) == 0 {
		if len(iniParams.Output) == 0 {
			return errors.New("nothing to do: pass --key to look up a value or --output to re-render the file")
		}
		return nil
	}

	value, found, err := ini.Find(strings.NewReader(contents), iniParams.Key, iniParams.Section)
	if err != nil {
		return err
	}
	if !found {
		return errors.New("the given section did not contain the specified key")
	}
	fmt.Print(value)
	return nil
}
