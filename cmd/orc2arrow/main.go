//go:build !ios && !android && (amd64 || arm64)

// orc2arrow converts an ORC file to an Arrow IPC file.
//
// Usage: orc2arrow [flags] <input.orc> <output.arrow>
//
// Column selection, batch size, and parallelism can be given as flags or in
// a YAML config file; flags win when both are set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/obinnaokechukwu/orcgo"
)

type config struct {
	Columns     []string `yaml:"columns"`
	BatchSize   int      `yaml:"batch_size"`
	Parallelism int      `yaml:"parallelism"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func main() {
	var (
		columnsFlag = flag.String("columns", "", "comma-separated list of columns to read (default: all)")
		batchSize   = flag.Int("batch-size", 0, "rows per record batch (default 1024)")
		parallel    = flag.Int("parallel", 1, "stripes to decode concurrently; >1 does not preserve stripe order")
		configPath  = flag.String("config", "", "YAML config file (columns, batch_size, parallelism)")
		infoOnly    = flag.Bool("info", false, "print schema and stats, do not convert")
		quiet       = flag.Bool("quiet", false, "suppress the progress bar")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.orc> <output.arrow>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || (!*infoOnly && len(args) < 2) {
		flag.Usage()
		os.Exit(2)
	}
	input := args[0]

	cfg := &config{}
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fatalf("Failed to load config: %v", err)
		}
	}
	if *columnsFlag != "" {
		cfg.Columns = strings.Split(*columnsFlag, ",")
	}
	if *batchSize > 0 {
		cfg.BatchSize = *batchSize
	}
	if *parallel > 1 {
		cfg.Parallelism = *parallel
	}

	if err := orcgo.Init(); err != nil {
		fatalf("Failed to load ORC libraries: %v", err)
	}

	opts := []orcgo.Option{}
	if len(cfg.Columns) > 0 {
		opts = append(opts, orcgo.WithIncludedColumns(cfg.Columns...))
	}
	if cfg.BatchSize > 0 {
		opts = append(opts, orcgo.WithBatchSize(cfg.BatchSize))
	}
	if cfg.Parallelism > 1 {
		opts = append(opts, orcgo.WithParallelism(cfg.Parallelism))
	}

	r, err := orcgo.Open(input, opts...)
	if err != nil {
		fatalf("Failed to open %s: %v", input, err)
	}
	defer r.Close()

	if *infoOnly {
		printInfo(r, input)
		return
	}

	out, err := os.Create(args[1])
	if err != nil {
		fatalf("Failed to create %s: %v", args[1], err)
	}
	defer out.Close()

	w, err := ipc.NewFileWriter(out, ipc.WithSchema(r.Schema()))
	if err != nil {
		fatalf("Failed to create Arrow writer: %v", err)
	}

	var bar *progressbar.ProgressBar
	if !*quiet {
		total, _ := r.NumRows()
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var mu sync.Mutex // ipc writers are not safe for concurrent Write
	err = orcgo.ReadStripes(context.Background(), r, func(_ int, rec arrow.Record) error {
		defer rec.Release()
		mu.Lock()
		defer mu.Unlock()
		if err := w.Write(rec); err != nil {
			return err
		}
		if bar != nil {
			bar.Add64(rec.NumRows())
		}
		return nil
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		w.Close()
		fatalf("Conversion failed: %v", err)
	}
	if err := w.Close(); err != nil {
		fatalf("Failed to finalize %s: %v", args[1], err)
	}
	if err := out.Close(); err != nil {
		fatalf("Failed to close %s: %v", args[1], err)
	}

	if !*quiet {
		rows, _ := r.NumRows()
		fmt.Fprintf(os.Stderr, "Wrote %d rows in %d stripes to %s\n", rows, r.NumStripes(), args[1])
	}
}

func printInfo(r *orcgo.Reader, input string) {
	rows, err := r.NumRows()
	if err != nil {
		fatalf("Failed to read row count: %v", err)
	}
	comp, err := r.Compression()
	if err != nil {
		fatalf("Failed to read compression: %v", err)
	}

	fmt.Printf("File:        %s\n", input)
	fmt.Printf("Rows:        %d\n", rows)
	fmt.Printf("Stripes:     %d\n", r.NumStripes())
	fmt.Printf("Compression: %s\n", comp)
	fmt.Printf("Schema:\n%s\n", r.Schema())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
