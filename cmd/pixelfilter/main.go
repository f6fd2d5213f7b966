package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/esimov/pixelfilter"
	"github.com/esimov/pixelfilter/utils"
)

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or http(s) URL")
	destination = flag.String("out", "", "Destination image or directory")
	filters     = flag.String("filter", "", "Comma separated list of filters applied in order")
	list        = flag.Bool("list", false, "List the available filters")
	workers     = flag.Int("workers", 0, "Number of rows processed in parallel (0 = number of CPUs)")
	brightness  = flag.Int("brightness", pixelfilter.DefaultBrightness, "Brightness offset")
	shift       = flag.Int("shift", pixelfilter.DefaultShift, "Right shift in pixels")
	sepia       = flag.Int("sepia", pixelfilter.DefaultSepiaDepth, "Sepia tint depth")
	compare     = flag.Bool("compare", false, "Save a side by side before/after sheet")
	debug       = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	logger := initLogger(*debug)
	pixelfilter.SetLogger(logger)

	if *list {
		printCatalog()
		return
	}
	if len(*source) == 0 || len(*destination) == 0 || len(*filters) == 0 {
		logger.Fatal("Usage: pixelfilter -in input.jpg -out out.png -filter blur,sobel")
	}

	chain, err := buildChain(*filters, pixelfilter.Params{
		Brightness: *brightness,
		Shift:      *shift,
		SepiaDepth: *sepia,
	})
	if err != nil {
		logger.Fatalf("Invalid filter list: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	toProcess, err := collectInputs(*source, *destination)
	if err != nil {
		logger.Fatal(err)
	}

	p := &pixelfilter.Pipeline{Workers: *workers}
	for in, out := range toProcess {
		start := time.Now()
		err := process(ctx, p, chain, in, out)
		switch {
		case err == nil:
			fmt.Printf("\nProcessed in: %s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)))
			fmt.Printf("%sSaved as: %s %s✓%s\n\n", utils.DefaultColor, filepath.Base(out), utils.SuccessColor, utils.DefaultColor)
		case ctx.Err() != nil:
			logger.WithField("source", in).Warn("Processing cancelled, nothing was written")
			os.Exit(1)
		default:
			fmt.Printf("\n%sError processing image %s: %s%s\n", utils.ErrorColor, in, err.Error(), utils.DefaultColor)
		}
	}
}

// initLogger initializes the logger with the appropriate level and format.
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return logger
}

func printCatalog() {
	groups := pixelfilter.ByCategory()
	for _, c := range []pixelfilter.Category{
		pixelfilter.CategoryPoint,
		pixelfilter.CategoryConvolution,
		pixelfilter.CategoryStatistics,
		pixelfilter.CategoryMorphology,
		pixelfilter.CategoryOrder,
		pixelfilter.CategoryEdge,
	} {
		fmt.Printf("%s%s%s\n", utils.SuccessColor, c, utils.DefaultColor)
		for _, name := range groups[c] {
			_, desc, _ := pixelfilter.Describe(name)
			fmt.Printf("  %-18s %s\n", name, desc)
		}
	}
}

// buildChain resolves the comma separated filter names.
func buildChain(names string, params pixelfilter.Params) ([]pixelfilter.Filter, error) {
	var chain []pixelfilter.Filter
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := pixelfilter.New(name, params)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("no filter given")
	}
	return chain, nil
}

// collectInputs maps every source image to its destination path.
func collectInputs(src, dst string) (map[string]string, error) {
	toProcess := make(map[string]string)
	if utils.IsURL(src) {
		toProcess[src] = dst
		return toProcess, nil
	}

	fs, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	if !fs.IsDir() {
		toProcess[src] = dst
		return toProcess, nil
	}

	// Check if the image destination is a directory or a file.
	ds, err := os.Stat(dst)
	if err != nil {
		return nil, fmt.Errorf("unable to get dir stats: %w", err)
	}
	if !ds.IsDir() {
		return nil, fmt.Errorf("please specify a directory as destination")
	}

	files, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read dir: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !isSupported(f.Name()) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		toProcess[filepath.Join(src, f.Name())] = filepath.Join(dst, name+".png")
	}
	return toProcess, nil
}

func process(ctx context.Context, p *pixelfilter.Pipeline, chain []pixelfilter.Filter, in, out string) error {
	path := in
	if utils.IsURL(in) {
		f, err := utils.DownloadImage(ctx, in)
		if err != nil {
			return err
		}
		f.Close()
		defer os.Remove(f.Name())
		path = f.Name()
	}

	src, err := loadImage(path)
	if err != nil {
		return err
	}

	res := src
	for _, f := range chain {
		name := fmt.Sprintf("%v", f)
		if n, ok := f.(interface{ Name() string }); ok {
			name = n.Name()
		}
		bar := utils.NewProgress(fmt.Sprintf("Applying %s", name))
		p.Progress = bar.Update
		bar.Start()
		res, err = p.Apply(ctx, f, res)
		bar.Stop()
		if err != nil {
			return err
		}
	}

	var img image.Image = res.Image()
	if *compare {
		img = utils.CompareSheet(src.Image(), img, "original", *filters)
	}
	return saveImage(out, img)
}
