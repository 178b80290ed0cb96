package frame

import "context"

// ExtractResult is what a successful seed pipeline run produces: the frame
// record (in display-space rectangle terms) and the rendered crop of the
// original-resolution image.
type ExtractResult struct {
	Record FrameRecord
	Crop   Image
}

// ExtractFrame runs the seed pipeline: obtain the decoded original and its
// display sibling, flood-fill the display image at seedDisplay, build the
// minimum-area oriented bounding rectangle in display coordinates, scale it
// to original coordinates, smart-crop the original, and register a frame
// record. The stage order (decode -> scale -> flood-fill -> rectangle ->
// crop -> register) is strict.
func ExtractFrame(
	ctx context.Context,
	decode DecodedProvider,
	scale ScaleProvider,
	store FrameStore,
	path string,
	seedDisplay Vector2,
	cfg ProcessingConfig,
	label string,
) (ExtractResult, error) {
	if err := cfg.Validate(); err != nil {
		return ExtractResult{}, err
	}

	original, err := decode.Original(ctx, path)
	if err != nil {
		return ExtractResult{}, wrapPathSeed(err, "ExtractFrame.decode", path, seedDisplay)
	}

	display, scaleDisplayToOriginal, err := scale.DisplayScale(ctx, path, original)
	if err != nil {
		return ExtractResult{}, wrapPathSeed(err, "ExtractFrame.scale", path, seedDisplay)
	}

	predicate := WhiteBoundaryPredicate(cfg.WhiteThreshold)
	region, err := FloodFill(display, seedDisplay, predicate, cfg.MaxPixels)
	if err != nil {
		return ExtractResult{}, wrapPathSeed(err, "ExtractFrame.floodfill", path, seedDisplay)
	}

	obbCfg := OBBConfig{
		UsePCA:                cfg.UsePCA,
		EnableAngleRefine:     cfg.EnableAngleRefine,
		AngleRefineWindow:     cfg.AngleRefineWindow,
		AngleRefineIterations: cfg.AngleRefineIterations,
	}
	displayBox, err := MinAreaRect(region, cfg.MinArea, obbCfg)
	if err != nil {
		return ExtractResult{}, wrapPathSeed(err, "ExtractFrame.obb", path, seedDisplay)
	}

	originalBox := ScaleBox(displayBox, 1/scaleDisplayToOriginal)

	cropCfg := SmartCropConfig{
		Padding:     cfg.Padding,
		CropInset:   cfg.CropInset,
		MinRotation: cfg.MinRotation,
	}
	cropped, err := SmartCrop(original, originalBox, cropCfg)
	if err != nil {
		return ExtractResult{}, wrapPathSeed(err, "ExtractFrame.crop", path, seedDisplay)
	}

	rec := FrameRecord{
		BoundingBox:                  displayBox,
		Label:                        label,
		Orientation:                  0,
		SourcePath:                   path,
		ScaleFactorDisplayToOriginal: scaleDisplayToOriginal,
	}
	rec = store.Register(rec)

	return ExtractResult{Record: rec, Crop: cropped}, nil
}

// wrapPathSeed re-stamps an *Error's Path/Seed (which inner stages leave
// blank, since they operate on coordinates rather than requests) without
// changing its Kind, so every failure surfaces with the seed and path that
// produced it.
func wrapPathSeed(err error, op, path string, seed Vector2) error {
	fe, ok := err.(*Error)
	if !ok {
		return newErr(DecodeFailed, op, path, seed, err)
	}
	return newErr(fe.Kind, op, path, seed, fe.Err)
}
