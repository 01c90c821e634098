package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/cairn/internal/config"
	"github.com/harrison/cairn/internal/display"
	"github.com/harrison/cairn/internal/fileutil"
	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for cairn
func NewRootCommand() *cobra.Command {
	opts := models.DefaultOptions()
	var (
		checksum string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "cairn [path]",
		Short: "List directory contents with columns, trees and colour",
		Long: `cairn lists the entries of a directory, or a single file, as a compact
grid, an aligned table of metadata columns, or a tree.

Presentation defaults are read from $CAIRN_CONFIG, else
$XDG_CONFIG_HOME/cairn/config.yaml, else ~/.config/cairn/config.yaml.
CLI flags override configuration file settings.

Examples:
  cairn                      # Grid of the current directory
  cairn -l ~/src             # Long listing
  cairn -t -s -S .           # Tree with true directory sizes
  cairn -R --dirs /etc       # Recurse, directories only
  cairn --find '*.go' -R     # Search below the current directory
  cairn --checksum sha256 -H # Checksum column with headers`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Path = args[0]
			}
			opts.Checksum = models.HashAlgorithm(checksum)
			if cmd.Flags().Changed("width") {
				opts.Width = &width
			}
			return run(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.String("config", "", "Path to config file")

	// columns
	f.BoolVarP(&opts.Long, "long", "l", false, "Long listing: permissions, size, user and modified date")
	f.BoolVarP(&opts.Size, "size", "s", false, "Display each entry's size")
	f.BoolVarP(&opts.Permission, "permission", "p", false, "Display each entry's permissions")
	f.BoolVarP(&opts.User, "user", "u", false, "Display each entry's user")
	f.BoolVarP(&opts.Group, "group", "g", false, "Display each entry's group")
	f.BoolVarP(&opts.Created, "created", "c", false, "Display each entry's status change date")
	f.BoolVarP(&opts.Modified, "modified", "m", false, "Display each entry's modification date")
	f.BoolVar(&opts.Accessed, "accessed", false, "Display each entry's last access date")
	f.BoolVarP(&opts.Inode, "inode", "i", false, "Display inode numbers")
	f.BoolVarP(&opts.Blocks, "blocks", "b", false, "Display number of allocated blocks")
	f.BoolVarP(&opts.BlockSize, "block-size", "B", false, "Display preferred I/O block size")
	f.BoolVar(&opts.HardLinks, "hard-links", false, "Display number of hard links")
	f.BoolVarP(&opts.Xattr, "xattr", "x", false, "Display extended attribute names")
	f.BoolVar(&opts.ACL, "acl", false, "Display + when an entry carries an ACL")
	f.BoolVarP(&opts.Context, "context", "Z", false, "Display SELinux security context")
	f.BoolVar(&opts.Mountpoint, "mountpoint", false, "Display the mount point an entry lives on")
	f.BoolVar(&opts.Magic, "magic", false, "Display the detected content type")
	f.StringVar(&checksum, "checksum", "", "Display a checksum: crc32, md5, sha224, sha256, sha384, sha512")

	// layout
	f.BoolVarP(&opts.Headers, "headers", "H", false, "Show column headers")
	f.BoolVarP(&opts.Oneline, "oneline", "1", false, "Display one entry per line")
	f.BoolVar(&opts.Across, "across", false, "Fill grid rows before columns")
	f.BoolVarP(&opts.Tree, "tree", "t", false, "Display directories as a tree")
	f.BoolVarP(&opts.Recursive, "recursive", "R", false, "List subdirectories recursively")
	f.IntVarP(&width, "width", "w", 0, "Set output width to COLS (0 = no limit)")

	// filtering and ordering
	f.BoolVarP(&opts.All, "all", "a", false, "Include entries starting with .")
	f.BoolVarP(&opts.Dirs, "dirs", "d", false, "Only show directories")
	f.BoolVarP(&opts.Files, "files", "f", false, "Only show files")
	f.BoolVar(&opts.Prune, "prune", false, "Omit empty directories")
	f.StringSliceVar(&opts.Hide, "hide", nil, "Omit entries matching comma-separated globs")
	f.StringVar(&opts.Find, "find", "", "Find entries whose names match a glob")
	f.StringVar((*string)(&opts.Sort), "sort", string(opts.Sort), "Sort by: name, size, created, accessed, modified, extension, inode")
	f.BoolVarP(&opts.Reverse, "reverse", "r", false, "Reverse the sort order")
	f.BoolVarP(&opts.TrueSize, "true-size", "S", false, "Size directories by their contents")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log diagnostics to stderr")

	// presentation
	f.StringVarP((*string)(&opts.QuoteName), "quote-name", "Q", string(opts.QuoteName), "Quote names: auto, single, double, never")
	f.StringVarP((*string)(&opts.Colours), "colours", "C", string(opts.Colours), "Use colours: always, auto, never")
	f.StringVarP((*string)(&opts.Icons), "icons", "I", string(opts.Icons), "Show icons: always, auto, never")
	f.StringVar((*string)(&opts.Hyperlink), "hyperlink", string(opts.Hyperlink), "Hyperlink names: always, auto, never")
	f.StringVar((*string)(&opts.DateFormat), "date-format", string(opts.DateFormat), "Dates: locale, humanly, timestamp")
	f.StringVar((*string)(&opts.NumberFormat), "number-format", string(opts.NumberFormat), "Numbers: humanly, natural")
	f.StringVar((*string)(&opts.OwnershipFormat), "ownership-format", string(opts.OwnershipFormat), "Users and groups: name, id")
	f.StringVar((*string)(&opts.PermissionFormat), "permission-format", string(opts.PermissionFormat), "Permissions: symbolic, octal, hex")
	f.StringVar((*string)(&opts.SizeFormat), "size-format", string(opts.SizeFormat), "Sizes: bytes, binary, decimal")

	f.SetNormalizeFunc(normalizeFlagName)
	cmd.MarkFlagsMutuallyExclusive("tree", "recursive")
	cmd.MarkFlagsMutuallyExclusive("tree", "find")

	return cmd
}

// run loads the config, merges it under the flags and renders the listing
func run(cmd *cobra.Command, opts *models.Options) error {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.ApplyTo(opts, cmd.Flags().Changed)
	if err := opts.Validate(); err != nil {
		return err
	}

	logLevel := cfg.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)

	if _, err := os.Lstat(opts.Path); err != nil {
		return fmt.Errorf("cannot access '%s': %w", opts.Path, err)
	}

	styler := display.NewStyler(opts, display.ProcessEnvironment(), cfg.Theme)
	deps := display.Deps{
		Reader:   fileutil.NewReader(opts, log, styler.Icons),
		Features: fileutil.NewFeatures(opts.All, log),
		Styler:   styler,
		Log:      log,
		Width:    layout.ResolveWidth(opts.Width),
		Err:      cmd.ErrOrStderr(),
	}
	log.LogDebug(fmt.Sprintf("Listing %s as %s", opts.Path, display.SelectMode(opts)))

	if err := display.Render(cmd.OutOrStdout(), opts.Path, deps); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
