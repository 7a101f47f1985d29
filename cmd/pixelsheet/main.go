package main

import (
	"fmt"
	"os"

	pb "github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/submersibletoaster/pixelsheet/convert"
	"github.com/submersibletoaster/pixelsheet/palette"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := convert.DefaultOptions()
	var (
		outDir   string
		preview  bool
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "pixelsheet IMAGE",
		Short: "render an image as a spreadsheet of solid-colored cells",
		Long: "pixelsheet converts a raster image (png, jpeg, bmp, webp) into an xlsx\n" +
			"workbook where every cell is one pixel, staying inside the format's\n" +
			"style and dimension limits by quantizing and merging colors.",
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				log.Warnf("invalid log level %q, using info", logLevel)
				level = log.InfoLevel
			}
			log.SetLevel(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if preview {
				opts.Preview = os.Stderr
			}
			return runConvert(args[0], outDir, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Bits, "bits", "b", opts.Bits, "color precision per channel (1-8)")
	f.StringVarP(&outDir, "out", "o", ".", "output directory")
	f.IntVar(&opts.Limits.MaxStyles, "max-styles", opts.Limits.MaxStyles, "style ceiling of the target format")
	f.BoolVar(&opts.Grayscale, "grayscale", false, "convert to grayscale before mapping")
	f.IntVar(&opts.PaletteSize, "palette", 0, "pre-reduce the image to at most N colors (0 disables)")
	f.StringVar(&opts.PaletteAlgo, "palette-algo", palette.Hierarchical, "palette algorithm (hierarchical|mediancut)")
	f.BoolVar(&opts.Dither, "dither", false, "error-diffusion dither during palette reduction")
	f.BoolVar(&opts.LabDistance, "lab", false, "merge overflow colors by Lab distance instead of RGB")
	f.BoolVar(&preview, "preview", false, "print an ANSI preview of the sheet to stderr")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	return cmd
}

func runConvert(imagePath, outDir string, opts convert.Options) error {
	bar := pb.New(100)
	bar.Start()
	for ev := range convert.Convert(imagePath, outDir, opts) {
		switch e := ev.(type) {
		case convert.Progress:
			bar.SetCurrent(int64(e.Percent))
		case convert.Warning:
			log.Warn(e.Message)
		case convert.Success:
			bar.SetCurrent(100)
			bar.Finish()
			fmt.Printf("saved %s (%d styles)\n", e.Path, e.StyleCount)
		case convert.Failure:
			bar.Finish()
			return e.Err
		}
	}
	return nil
}
