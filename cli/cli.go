package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"t0ast.cc/bravetint/internal"
	uerror "t0ast.cc/bravetint/util/error"
	uio "t0ast.cc/bravetint/util/io"
)

const version = "1.0.0"

const description = "Set custom theme colors in Brave Browser profiles, bypassing the restricted color picker."

var CLI struct {
	Profiles []string `help:"Profile folders to update (e.g. 'Default', 'Profile 1')" short:"p" optional:"" placeholder:"FOLDER"`
	Name     []string `help:"Profile names to update (case-insensitive, partial match)" short:"n" optional:"" placeholder:"NAME"`
	List     bool     `help:"List all profiles and their current colors" short:"l"`
	DryRun   bool     `help:"Show what would be changed without making changes"`
	NoBackup bool     `help:"Don't create backups before modifying"`
	Force    bool     `help:"Apply changes even if Brave is running (not recommended)" short:"f"`
	DataDir  string   `help:"Custom Brave user data directory (default: auto-detect)" name:"data-dir" optional:"" placeholder:"PATH" type:"path"`

	Apply   ApplyCmd   `cmd:"" default:"withargs" help:"Apply a theme color to profiles (default if a color is given)"`
	Backups BackupsCmd `cmd:"" help:"List saved preference backups"`

	Version kong.VersionFlag `help:"Print version information and quit" short:"v"`
}

type CommandContext struct {
	DataDir string
	Context context.Context
}

func Run(args []string) error {
	kctx, err := kong.Must(&CLI,
		kong.Name("bravetint"),
		kong.Description(description),
		kong.Vars{"version": "bravetint " + version},
	).Parse(args[1:])
	if err != nil {
		return uerror.WithStackTrace(err)
	}

	dataDir := CLI.DataDir
	if dataDir == "" {
		dataDir, err = internal.DetectDataDir()
		if err != nil {
			return err
		}
	}
	dataDirExists, err := uio.DirExists(dataDir)
	if err != nil {
		return uerror.WithStackTrace(err)
	}
	if !dataDirExists {
		return fmt.Errorf("Brave user data directory not found: %s", dataDir)
	}

	return kctx.Run(CommandContext{
		DataDir: dataDir,
		Context: context.Background(),
	})
}
