package tether

import (
	"context"
	"fmt"
	"strings"
)

// AssetManager loads skeleton assets by path. Loads block until the resource
// is ready or ctx is done; Data looks up the result afterward. Loading the
// same path twice is expected to be a cheap no-op.
type AssetManager interface {
	// LoadAtlas loads the texture atlas at path.
	LoadAtlas(ctx context.Context, path string) error
	// LoadBinary loads a binary skeleton file against a loaded atlas.
	LoadBinary(ctx context.Context, skeletonPath, atlasPath string) error
	// LoadJSON loads a JSON skeleton file against a loaded atlas.
	LoadJSON(ctx context.Context, skeletonPath, atlasPath string) error
	// Data returns the loaded skeleton data for skeletonPath, or nil when
	// the path has not finished loading.
	Data(skeletonPath string) SkeletonData
}

// SkeletonSource describes where an entity's skeleton comes from. Either the
// path pair is loaded through the overlay's AssetManager, or pre-built Data
// is used directly and no loading happens.
type SkeletonSource struct {
	AtlasPath    string
	SkeletonPath string
	// Scale is the uniform skeleton scale applied at registration.
	// Zero or negative selects 1.
	Scale float64
	// Clip, when set, starts looping on track 0 at registration and seeds
	// the bounds estimate.
	Clip string
	// Data, when set, skips loading entirely.
	Data SkeletonData
	// Updater replaces the default per-frame pipeline for this entity.
	Updater Updater
}

// binarySkeleton reports whether path names a binary skeleton file.
// Everything else loads through the JSON path.
func binarySkeleton(path string) bool {
	return strings.HasSuffix(path, ".skel")
}

// loadSource fetches the source's atlas and skeleton through assets and
// returns the resulting data. Pre-built data short-circuits.
func loadSource(ctx context.Context, assets AssetManager, src SkeletonSource) (SkeletonData, error) {
	if src.Data != nil {
		return src.Data, nil
	}
	if assets == nil {
		return nil, fmt.Errorf("tether: source %q needs an AssetManager to load", src.SkeletonPath)
	}
	if err := assets.LoadAtlas(ctx, src.AtlasPath); err != nil {
		return nil, fmt.Errorf("tether: failed to load atlas %q: %w", src.AtlasPath, err)
	}
	if binarySkeleton(src.SkeletonPath) {
		if err := assets.LoadBinary(ctx, src.SkeletonPath, src.AtlasPath); err != nil {
			return nil, fmt.Errorf("tether: failed to load skeleton %q: %w", src.SkeletonPath, err)
		}
	} else {
		if err := assets.LoadJSON(ctx, src.SkeletonPath, src.AtlasPath); err != nil {
			return nil, fmt.Errorf("tether: failed to load skeleton %q: %w", src.SkeletonPath, err)
		}
	}
	data := assets.Data(src.SkeletonPath)
	if data == nil {
		return nil, fmt.Errorf("tether: no skeleton data for %q after load", src.SkeletonPath)
	}
	return data, nil
}
