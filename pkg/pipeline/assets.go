package pipeline

import (
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/Shadid12/creatives-automation/pkg/brief"
	"github.com/Shadid12/creatives-automation/pkg/errors"
)

// imageExtensions are the base image formats accepted from the assets dir,
// in scan-preference order.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// FindAsset looks for a provided base image for the product.
//
// An explicit asset_path in the brief wins; a missing explicit path is a hard
// error since the brief author clearly expected the file to exist. Otherwise
// the assets dir is probed for <slug>.<ext>, then walked recursively for any
// image whose filename contains the slug (so "shoe-01-hero.png" matches
// product shoe-01). A nil image with nil error means no asset was provided
// and the image should be generated.
func FindAsset(assetsDir string, p brief.Product) (image.Image, string, error) {
	if p.AssetPath != "" {
		path := filepath.Join(assetsDir, filepath.FromSlash(p.AssetPath))
		img, err := imaging.Open(path)
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeAssetNotFound, err, "asset %s for product %q", p.AssetPath, p.Key())
		}
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "open asset %s", p.AssetPath)
		}
		return img, path, nil
	}

	slug := p.Slug()
	for _, ext := range imageExtensions {
		path := filepath.Join(assetsDir, slug+ext)
		img, err := imaging.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "open asset %s", path)
		}
		return img, path, nil
	}

	path, err := scanForSlug(assetsDir, slug)
	if err != nil || path == "" {
		return nil, "", err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "open asset %s", path)
	}
	return img, path, nil
}

// scanForSlug walks the assets dir looking for the first image whose
// filename (minus extension) contains the product slug. Returns an empty
// path when nothing matches or the dir does not exist.
func scanForSlug(assetsDir, slug string) (string, error) {
	var match string
	err := filepath.WalkDir(assetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == assetsDir && os.IsNotExist(err) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !IsImageFile(d.Name()) {
			return nil
		}
		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if strings.Contains(strings.ToLower(stem), slug) {
			match = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "scan assets dir %s", assetsDir)
	}
	return match, nil
}

// IsImageFile reports whether the filename has a recognized image extension.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
