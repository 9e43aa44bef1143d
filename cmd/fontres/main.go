package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/traytick/fontres/internal/bundled"
	"github.com/traytick/fontres/internal/config"
	"github.com/traytick/fontres/internal/platform"
	"github.com/traytick/fontres/pkg/fontres"
	"github.com/traytick/fontres/pkg/sfnt"
)

var (
	fontsRoot  string
	configPath string
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fontres",
	Short: "fontres manages the fonts TrayTick renders with",
	Long: `fontres is TrayTick's font tooling. It unpacks the bundled fonts,
inspects font files, and reads or changes the persisted selection the
tray timer loads at startup.

Examples:
  # Unpack the bundled fonts next to the executable
  fontres extract

  # Show the family name a font file declares
  fontres name fonts/TrayTickDisplay-Regular.ttf

  # Point the timer at another font under the fonts directory
  fontres set mono/Extra.ttf`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var nameCmd = &cobra.Command{
	Use:   "name [font file]",
	Short: "Print the family name a font file declares",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		name, err := sfnt.FamilyName(data)
		if err != nil {
			return fmt.Errorf("extracting family name: %w", err)
		}
		fmt.Println(name)
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [ref]",
	Short: "Resolve a font ref against the fonts directory",
	Long: `Resolve checks the ref's nominal location under the fonts directory
and falls back to searching the whole tree by file name, exactly the way
the timer resolves its persisted selection at startup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locator := fontres.NewLocator(fontsRoot)
		path, err := locator.Resolve(fontres.FileRef(args[0]))
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		fmt.Println(string(path))
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Unpack the bundled fonts into the fonts directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		var store bundled.Store
		extractor := fontres.NewExtractor(store, logrus.StandardLogger())
		if err := extractor.ExtractAll(fontsRoot); err != nil {
			return fmt.Errorf("extracting bundled fonts: %w", err)
		}
		fmt.Printf("Extracted %d fonts into %s\n", len(store.Blobs()), fontsRoot)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the font files under the fonts directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		locator := fontres.NewLocator(fontsRoot)
		refs := locator.List()
		if len(refs) == 0 {
			fmt.Printf("No fonts under %s\n", fontsRoot)
			return nil
		}

		fmt.Println("Available fonts:")
		for _, ref := range refs {
			display := ref.Stem()
			if data, err := os.ReadFile(filepath.Join(fontsRoot, filepath.FromSlash(string(ref)))); err == nil {
				if name, err := sfnt.FamilyName(data); err == nil {
					display = name
				}
			}
			fmt.Printf("  - %s (%s)\n", display, string(ref))
		}
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the persisted font selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Open(configPath)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}

		ref := fontres.ParseRef(store.Read(fontres.ConfigKeyFontFile))
		if ref == "" {
			fmt.Printf("No font selected in %s; the timer will use %s\n", store.Path(), bundled.DefaultRef)
			return nil
		}

		locator := fontres.NewLocator(fontsRoot)
		path, err := locator.Resolve(ref)
		if err != nil {
			fmt.Printf("%s (missing under %s)\n", string(ref), fontsRoot)
			return nil
		}

		display := ref.Stem()
		if data, err := os.ReadFile(string(path)); err == nil {
			if name, err := sfnt.FamilyName(data); err == nil {
				display = name
			}
		}
		fmt.Printf("%s (%s)\n", display, string(path))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set [ref]",
	Short: "Select the font the timer renders with",
	Long: `Set resolves the ref under the fonts directory, registers the font,
and persists the selection in the TrayTick settings file. The running
timer picks it up on its next start.

Examples:
  fontres set TrayTickMono-Regular.ttf
  fontres set mono/Extra.ttf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Open(configPath)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}

		res := fontres.NewResourceManager(platform.New(), logrus.StandardLogger())
		ctrl := fontres.NewController(store, fontres.NewLocator(fontsRoot), res, bundled.DefaultRef, logrus.StandardLogger())
		ctrl.Init()

		sel, err := ctrl.Switch(fontres.FileRef(args[0]))
		if err != nil {
			return fmt.Errorf("selecting %s: %w", args[0], err)
		}
		fmt.Printf("Now using %s (%s)\n", sel.Name, string(sel.Ref))
		fmt.Printf("Saved to %s\n", store.Path())
		return nil
	},
}

func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func init() {
	dir := exeDir()
	rootCmd.PersistentFlags().StringVar(&fontsRoot, "fonts-root", filepath.Join(dir, "fonts"), "Directory holding the managed font files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(dir, "traytick.ini"), "TrayTick settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(setCmd)
}
