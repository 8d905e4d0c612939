// Command xyz2sgf converts GIB, NGF and UGF/UGI game records to SGF.
//
// Usage:
//
//	xyz2sgf game.gib other.ngf
//	xyz2sgf --encoding euc-kr --jobs 4 *.gib
//	xyz2sgf --preview game.ugi
//
// Each input file is converted independently; one file failing does not
// stop the rest. The output name is the input name plus ".sgf".
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rooklift/sgf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/xyproto/xyz2sgf"
)

// Config is the optional YAML configuration file. Flags override it.
type Config struct {
	// Encoding is the default source encoding for every format.
	Encoding string `yaml:"encoding"`
	// Encodings overrides the default per format ("gib", "ngf", "ugf").
	Encodings map[string]string `yaml:"encodings"`
	// Suffix is appended to the input name to form the output name.
	Suffix string `yaml:"suffix"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{Suffix: ".sgf"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %v", path, err)
	}
	if cfg.Suffix == "" {
		cfg.Suffix = ".sgf"
	}
	return cfg, nil
}

func main() {
	var (
		configPath string
		formatName string
		encName    string
		jobs       int
		preview    bool
		toStdout   bool
	)

	root := &cobra.Command{
		Use:          "xyz2sgf [files...]",
		Short:        "Convert GIB, NGF and UGF/UGI game records to SGF",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zl, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer zl.Sync()
			log := zl.Sugar()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			format, err := xyz2sgf.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if jobs < 1 {
				jobs = 1
			}

			var group errgroup.Group
			group.SetLimit(jobs)
			for _, path := range args {
				path := path
				group.Go(func() error {
					return convertFile(log, cfg, format, encName, path, preview, toStdout)
				})
			}
			if err := group.Wait(); err != nil {
				return errors.New("some conversions failed")
			}
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "YAML config file")
	root.Flags().StringVar(&formatName, "format", "auto", "source format: gib, ngf, ugf or auto")
	root.Flags().StringVar(&encName, "encoding", "", "source encoding (default utf-8)")
	root.Flags().IntVar(&jobs, "jobs", 1, "number of files to convert in parallel")
	root.Flags().BoolVar(&preview, "preview", false, "print the final position of each converted game")
	root.Flags().BoolVar(&toStdout, "stdout", false, "write SGF to stdout instead of files")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// convertFile runs the full pipeline for one input file and writes the
// result next to it.
func convertFile(log *zap.SugaredLogger, cfg *Config, format xyz2sgf.Format, encFlag, path string, preview, toStdout bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Errorw("read failed", "file", path, "error", err)
		return err
	}

	fileFormat := format
	if fileFormat == xyz2sgf.FormatAuto {
		fileFormat, err = xyz2sgf.Detect(path, raw)
		if err != nil {
			log.Errorw("conversion failed", "file", path, "error", err)
			return err
		}
	}

	enc, err := xyz2sgf.ParseEncoding(encodingFor(cfg, encFlag, fileFormat))
	if err != nil {
		log.Errorw("conversion failed", "file", path, "error", err)
		return err
	}

	text, warnings, err := xyz2sgf.Convert(raw, xyz2sgf.Options{
		Format:   fileFormat,
		Encoding: enc,
		Filename: path,
	})
	for _, w := range warnings {
		log.Warnw("recoverable parse issue", "file", path, "issue", w.String())
	}
	if err != nil {
		log.Errorw("conversion failed", "file", path, "error", err)
		return err
	}

	if toStdout {
		fmt.Print(text)
		return nil
	}

	outPath := path + cfg.Suffix
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		log.Errorw("write failed", "file", outPath, "error", err)
		return err
	}
	log.Infow("converted", "file", path, "output", outPath, "warnings", len(warnings))

	if preview {
		printFinalPosition(outPath)
	}
	return nil
}

// encodingFor picks the source encoding: the --encoding flag wins, then the
// per-format config entry, then the config default, then strict UTF-8.
func encodingFor(cfg *Config, flag string, format xyz2sgf.Format) string {
	if flag != "" {
		return flag
	}
	if enc, ok := cfg.Encodings[format.String()]; ok {
		return enc
	}
	return cfg.Encoding
}

// printFinalPosition loads the freshly written SGF and renders the last
// main-line position as an ASCII board.
func printFinalPosition(path string) {
	node, err := sgf.Load(path)
	if err != nil {
		fmt.Printf("preview unavailable for %s: %v\n", path, err)
		return
	}
	for len(node.Children()) > 0 {
		node = node.Children()[0]
	}
	board := node.Board()
	if board == nil {
		fmt.Println("no board state available")
		return
	}
	fmt.Print(board.String())
}
