// Package cli implements the sysinfo command line: section selection,
// output mode and configuration layering in front of the collector registry.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Guliveer/sysinfo/internal/collector"
	"github.com/Guliveer/sysinfo/internal/config"
	"github.com/Guliveer/sysinfo/internal/models"
	"github.com/Guliveer/sysinfo/internal/output"
)

// RootCommand wraps the cobra command and the flag values it binds.
type RootCommand struct {
	cmd      *cobra.Command
	embedded []byte

	sections   map[models.Section]*bool
	all        bool
	jsonOutput bool
	format     string
	configPath string
	logLevel   string
	interval   time.Duration
	parallel   bool
	partitions bool
}

// NewRootCommand builds the sysinfo command. embedded is the YAML
// configuration compiled into the binary, layered below any config file.
func NewRootCommand(version string, embedded []byte) *RootCommand {
	root := &RootCommand{
		embedded: embedded,
		sections: make(map[models.Section]*bool),
	}

	cmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Report operating system and hardware information",
		Long: `sysinfo prints a point-in-time snapshot of the host: OS identity,
CPU load, memory, disk partitions and I/O, network interfaces and I/O.

Select one or more sections; with none selected this help is shown.`,
		Example:       "  sysinfo --os --cpu --memory\n  sysinfo --all --json",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          root.run,
	}

	flags := cmd.Flags()
	root.bindSectionFlags(flags)
	flags.BoolVar(&root.all, "all", false, "Show every section")
	flags.BoolVar(&root.jsonOutput, "json", false, "Output JSON (shorthand for --output json)")
	flags.StringVarP(&root.format, "output", "o", "", "Output format (table, json, yaml)")
	flags.StringVar(&root.configPath, "config", "", "Config file path (default: ~/.sysinfo/config.yaml)")
	flags.StringVar(&root.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.DurationVar(&root.interval, "cpu-interval", 0, "CPU usage sampling interval (default 1s)")
	flags.BoolVar(&root.parallel, "parallel", false, "Collect sections concurrently")
	flags.BoolVar(&root.partitions, "all-partitions", false, "Include pseudo and network filesystems")

	cmd.AddCommand(newVersionCommand(version))
	cmd.SetVersionTemplate("sysinfo {{.Version}}\n")

	root.cmd = cmd
	return root
}

func (r *RootCommand) bindSectionFlags(flags *pflag.FlagSet) {
	usage := map[models.Section]string{
		models.SectionOS:      "Show operating system information",
		models.SectionCPU:     "Show CPU information",
		models.SectionMemory:  "Show memory information",
		models.SectionDisk:    "Show disk information",
		models.SectionNetwork: "Show network information",
	}
	for _, s := range models.AllSections() {
		r.sections[s] = flags.Bool(string(s), false, usage[s])
	}
}

// Command returns the underlying cobra command.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// ExecuteContext parses the arguments and runs the command.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// requested returns the selected sections in canonical order.
func (r *RootCommand) requested() ([]models.Section, error) {
	var names []string
	if r.all {
		names = append(names, models.SectionAll)
	}
	for _, s := range models.AllSections() {
		if *r.sections[s] {
			names = append(names, string(s))
		}
	}
	return models.ExpandSections(names)
}

func (r *RootCommand) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := config.CLIOverrides{
		Output:        r.format,
		LogLevel:      r.logLevel,
		CPUInterval:   r.interval,
		Parallel:      r.parallel,
		AllPartitions: r.partitions,
	}
	if r.jsonOutput {
		overrides.Output = config.OutputJSON
	}

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadLayered(overrides, r.embedded, r.configPath)
	} else {
		cfg, err = config.LoadLayered(overrides, r.embedded)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (r *RootCommand) run(cmd *cobra.Command, args []string) error {
	sections, err := r.requested()
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		return cmd.Help()
	}

	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	logger, closeLogger := NewLogger(cfg.Logging)
	defer closeLogger()

	opts := collector.Options{
		CPUInterval:   cfg.Collection.CPUInterval.Duration,
		AllPartitions: cfg.Disk.AllPartitions,
		Parallel:      cfg.Collection.Parallel,
	}
	registry := collector.NewRegistry(logger, opts)
	collector.Defaults(registry, opts)

	logger.Debug("Collecting snapshot",
		zap.Strings("sections", sectionNames(sections)),
		zap.String("output", string(format)),
		zap.Bool("parallel", opts.Parallel))

	snap, err := registry.Collect(cmd.Context(), sections)
	if err != nil {
		return err
	}
	return output.NewWriter(format, cmd.OutOrStdout()).Write(snap)
}

func sectionNames(sections []models.Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = string(s)
	}
	return out
}
