package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/farzaaaan/dupnames/cmd/config"
	"github.com/farzaaaan/dupnames/cmd/models"
	"github.com/farzaaaan/dupnames/cmd/report"
	"github.com/farzaaaan/dupnames/cmd/scan"
	"github.com/farzaaaan/dupnames/cmd/utils"
)

type scanOptions struct {
	ignoreFiles []string
	patterns    []string
	mode        string
	defaults    bool
	output      string
	configPath  string
	verbose     bool
}

func (o *scanOptions) bind(c *cobra.Command) {
	f := c.PersistentFlags()
	f.StringArrayVarP(&o.ignoreFiles, "ignore-from-file", "i", nil, "Path to file with items to ignore (one per line)")
	f.StringArrayVarP(&o.patterns, "ignore", "p", nil, "Pattern to ignore (repeatable)")
	f.StringVar(&o.mode, "match-mode", string(utils.MatchSubstring), "How ignore patterns match: substring, glob or segment")
	f.BoolVar(&o.defaults, "default-ignores", false, "Also ignore VCS directories and OS clutter files")
	f.StringVarP(&o.output, "output", "o", string(report.FormatText), "Output format: text, json or yaml")
	f.StringVarP(&o.configPath, "config", "c", "", "Config file (default ./"+config.DefaultFile+" if present)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log skipped entries and scan statistics")
}

// settings is the merge of the config file and the flags set on the command line.
type settings struct {
	ignoreFiles []string
	patterns    []string
	mode        utils.MatchMode
	defaults    bool
	format      report.Format
	verbose     bool
}

func (o *scanOptions) resolve(c *cobra.Command) (*settings, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := c.Flags()
	mode, output, defaults := cfg.Ignore.Mode, cfg.Output, cfg.Ignore.Defaults
	if flags.Changed("match-mode") {
		mode = o.mode
	}
	if flags.Changed("output") {
		output = o.output
	}
	if flags.Changed("default-ignores") {
		defaults = o.defaults
	}

	s := &settings{
		ignoreFiles: append(append([]string{}, cfg.Ignore.Files...), o.ignoreFiles...),
		patterns:    append(append([]string{}, cfg.Ignore.Patterns...), o.patterns...),
		defaults:    defaults,
		verbose:     o.verbose,
	}
	if s.mode, err = utils.ParseMatchMode(mode); err != nil {
		return nil, err
	}
	if s.format, err = report.ParseFormat(output); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *settings) ignorer(log *zap.Logger) (utils.Ignorer, error) {
	patterns := s.patterns
	for _, path := range s.ignoreFiles {
		log.Info("Loading ignore patterns", zap.String("file", path))
		lines, err := utils.LoadIgnoreFile(path)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, lines...)
	}

	m, err := utils.NewMatcher(s.mode, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("compiled ignore patterns", zap.String("mode", string(s.mode)), zap.Int("patterns", m.Len()))

	ignore := utils.Ignorers{m}
	if s.defaults {
		ignore = append(ignore, utils.NewDefaultMatcher())
	}
	return ignore, nil
}

func runScan(c *cobra.Command, opts *scanOptions, root string, newSource func(*zap.Logger) (scan.Source, error)) error {
	s, err := opts.resolve(c)
	if err != nil {
		return err
	}

	log, err := utils.NewLogger(s.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ignore, err := s.ignorer(log)
	if err != nil {
		return err
	}

	src, err := newSource(log)
	if err != nil {
		return err
	}

	res, err := scan.Run(c.Context(), src, ignore)
	if err != nil {
		return err
	}
	log.Debug("scan finished",
		zap.String("root", root),
		zap.Int("files", res.Stats.Files),
		zap.Int("ignored", res.Stats.Ignored),
		zap.Int("unnamed", res.Stats.Unnamed),
		zap.Int("errors", res.Stats.Errors),
		zap.Int("groups", len(res.Duplicates)),
	)

	return report.Write(c.OutOrStdout(), s.format, models.Report{
		Root:    root,
		Files:   res.Stats.Files,
		Ignored: res.Stats.Ignored,
		Unnamed: res.Stats.Unnamed,
		Errors:  res.Stats.Errors,
		Groups:  res.Duplicates.Groups(),
	})
}
