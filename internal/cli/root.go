// Package cli implements the inboxtags commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"inboxtags/internal/config"
	"inboxtags/internal/directory"
	"inboxtags/internal/eventbus"
	"inboxtags/internal/output"
	"inboxtags/internal/ui"
)

// ErrAborted is returned when the user leaves the picker without confirming
var ErrAborted = errors.New("aborted")

// options are the flags shared by every command
type options struct {
	configPath   string
	contactsPath string
	format       string
	noMouse      bool

	cfg     *config.Config
	logFile *os.File
}

// newRootCmd builds the command tree. The returned options hold what the
// run opens; callers release them with close.
func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}

	root := &cobra.Command{
		Use:   "inboxtags",
		Short: "Pick message recipients from a contact directory",
		Long: "inboxtags opens a recipient picker: type to search the contact directory,\n" +
			"add matches as tags, and press ctrl+s to print the chosen recipients.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/inboxtags/config.toml)")
	flags.StringVar(&opts.contactsPath, "contacts", "", "Contacts file (.toml, .yaml or .json); overrides contacts_file")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: text, json, yaml or toml; overrides output_format")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")

	root.AddCommand(newMatchCmd(opts), newContactsCmd(opts))
	return root, opts
}

// Run executes the command line in args. The log file is closed and log
// output restored on every path, errors included.
func Run(args []string, stdout, stderr io.Writer) error {
	cmd, opts := newRootCmd()
	defer opts.close()

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// Execute runs the process command line and reports errors on stderr
func Execute() int {
	if err := Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrAborted) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (o *options) load(cmd *cobra.Command) error {
	svc := config.NewConfigService()
	if o.configPath != "" {
		svc = config.NewConfigServiceAt(o.configPath)
	}
	_, statErr := os.Stat(svc.Path())
	firstRun := errors.Is(statErr, fs.ErrNotExist)

	cfg, err := svc.Load()
	if err != nil {
		return err
	}

	// Write the defaults out on first run so there is a file to edit
	var saveErr error
	if firstRun {
		saveErr = svc.Save(cfg)
	}

	if o.contactsPath != "" {
		cfg.ContactsFile = o.contactsPath
	}
	if o.format != "" {
		cfg.OutputFormat = o.format
	}
	if o.noMouse {
		cfg.UI.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	// Keep log output off the terminal the UI draws on
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			o.logFile = f
			log.SetOutput(f)
		}
	}
	log.Printf("Running %s (config %s)", cmd.CommandPath(), svc.Path())
	if saveErr != nil {
		log.Printf("Could not write default config: %v", saveErr)
	} else if firstRun {
		log.Printf("Wrote default config to %s", svc.Path())
	}
	return nil
}

func (o *options) close() {
	if o.logFile != nil {
		log.SetOutput(os.Stderr)
		o.logFile.Close()
		o.logFile = nil
	}
}

func (o *options) directory() (*directory.Directory, error) {
	dir, err := directory.Load(o.cfg.ContactsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	return dir, nil
}

func runPicker(cmd *cobra.Command, opts *options) error {
	dir, err := opts.directory()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	model, err := ui.NewModel(bus, opts.cfg, dir)
	if err != nil {
		return err
	}
	defer model.Close()

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		// stdout carries the result, so draw on stderr
		tea.WithOutput(os.Stderr),
	}
	if opts.cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	log.Printf("Starting UI with %d contacts", dir.Len())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}

	res := model.Result()
	if !res.Confirmed {
		log.Printf("UI aborted")
		return ErrAborted
	}
	log.Printf("UI confirmed with %d recipients", len(res.Selection))
	return output.Write(cmd.OutOrStdout(), opts.cfg.OutputFormat, res.Selection)
}
