// Command seedcrop exercises the extractFrame pipeline end to end from the
// shell: given an image path and a seed point, it floods the boundary
// region, fits the minimum-area rectangle, crops the original, and writes
// the result to disk. It is a CLI exerciser for the Engine facade, not a
// full interactive desktop shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/seedcrop/seedcrop"
	"github.com/seedcrop/seedcrop/pkg/frame"
	"github.com/seedcrop/seedcrop/util/log"
)

func main() {
	path := flag.String("path", "", "path to the source image (required)")
	out := flag.String("out", "", "output path for the cropped frame (defaults to a sanitized label)")
	label := flag.String("label", "frame", "label recorded on the frame and used to derive -out when unset")
	seedX := flag.Float64("seed-x", 0, "seed point X in display coordinates")
	seedY := flag.Float64("seed-y", 0, "seed point Y in display coordinates")
	whiteThreshold := flag.Int("white-threshold", frame.DefaultWhiteThreshold, "average-brightness threshold (0-255) for the white boundary predicate")
	usePCA := flag.Bool("pca", false, "let the PCA angle replace the hull-edge angle when they differ by more than 5 degrees and PCA gives a smaller projected height")
	refine := flag.Bool("refine-angle", false, "golden-section refine the orientation angle around the initial estimate")
	flag.Parse()

	requestID := uuid.NewString()

	if *path == "" {
		log.Fatalf("[%s] -path is required", requestID)
	}

	cfg := frame.DefaultProcessingConfig()
	cfg.WhiteThreshold = *whiteThreshold
	cfg.UsePCA = *usePCA
	cfg.EnableAngleRefine = *refine

	engine := seedcrop.NewEngine(
		seedcrop.FileDecoder{},
		seedcrop.OSFileWriter{},
		seedcrop.LabelSanitizer{},
		seedcrop.StdLogger{},
		seedcrop.Options{},
	)

	ctx := context.Background()
	seed := frame.Vector2{X: *seedX, Y: *seedY}

	log.Printf("[%s] extracting frame from %s at seed %s", requestID, *path, seed)
	rec, crop, err := engine.ExtractFrame(ctx, *path, seed, cfg, *label)
	if err != nil {
		log.Fatalf("[%s] extractFrame failed: %v", requestID, err)
	}

	savedPath, err := engine.SaveFrameToPath(ctx, rec, crop, *out)
	if err != nil {
		log.Fatalf("[%s] saveFrameToPath failed: %v", requestID, err)
	}

	fmt.Printf("frame %s: box=%+v saved to %s\n", rec.ID, rec.BoundingBox, savedPath)
	os.Exit(0)
}
