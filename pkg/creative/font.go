package creative

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Shadid12/creatives-automation/pkg/errors"
)

// Font source identifiers, in resolution order. The builtin source is the
// guaranteed terminal option of the chain.
const (
	FontSourceBundled  = "bundled"
	FontSourceExplicit = "explicit"
	FontSourceSystem   = "system"
	FontSourceLookup   = "lookup"
	FontSourceBuiltin  = "builtin"
)

// bundledPriority lists the font files tried first inside the bundled fonts
// directory, before any other font file found there.
var bundledPriority = []string{
	"Roboto-VariableFont_wdth,wght.ttf",
	"Roboto-Italic-VariableFont_wdth,wght.ttf",
}

// systemFontPaths is a fixed ordered list of conventional font locations on
// the three major desktop platforms.
var systemFontPaths = []string{
	// macOS
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	// Windows
	"C:/Windows/Fonts/arial.ttf",
	"C:/Windows/Fonts/calibri.ttf",
}

// lookupFamilies are the family names probed through the platform font
// database when none of the fixed paths exist.
var lookupFamilies = []string{
	"DejaVuSans",
	"Arial",
	"LiberationSans-Regular",
}

// FontCandidate is one entry of the font resolution chain.
type FontCandidate struct {
	Source string // one of the FontSource* constants
	Path   string
}

type faceKey struct {
	path string
	size float64
}

// Resolver resolves a renderable font face from an ordered candidate chain.
// Resolution never fails: every candidate load error is swallowed and the
// chain terminates in a built-in bitmap face with no external dependency.
//
// Resolved faces are cached per (path, size). The cache is a read-through
// performance optimization only; it can be dropped at any time with
// ClearCache and rebuilt on demand.
type Resolver struct {
	// Dir is the bundled fonts directory scanned first. May be empty or
	// nonexistent; the chain simply moves on.
	Dir string

	mu    sync.RWMutex
	cache map[faceKey]font.Face
}

// NewResolver creates a resolver over the given bundled fonts directory.
func NewResolver(dir string) *Resolver {
	return &Resolver{
		Dir:   dir,
		cache: make(map[faceKey]font.Face),
	}
}

// Chain returns the ordered candidate list for the given explicit font path,
// first success wins. The terminal built-in face is appended with an empty
// path. Making the chain a first-class value keeps the fallback policy
// testable instead of burying it in control flow.
func (r *Resolver) Chain(explicitPath string) []FontCandidate {
	var chain []FontCandidate

	// 1. Bundled directory: well-known names first, then any font file in
	// directory-listing order.
	if r.Dir != "" {
		seen := make(map[string]bool)
		for _, name := range bundledPriority {
			p := filepath.Join(r.Dir, name)
			seen[p] = true
			chain = append(chain, FontCandidate{Source: FontSourceBundled, Path: p})
		}
		if entries, err := os.ReadDir(r.Dir); err == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				ext := strings.ToLower(filepath.Ext(e.Name()))
				if ext != ".ttf" && ext != ".otf" {
					continue
				}
				p := filepath.Join(r.Dir, e.Name())
				if !seen[p] {
					chain = append(chain, FontCandidate{Source: FontSourceBundled, Path: p})
				}
			}
		}
	}

	// 2. Caller-supplied explicit path.
	if explicitPath != "" {
		chain = append(chain, FontCandidate{Source: FontSourceExplicit, Path: explicitPath})
	}

	// 3. Platform-conventional system paths.
	for _, p := range systemFontPaths {
		chain = append(chain, FontCandidate{Source: FontSourceSystem, Path: p})
	}

	// 4. Platform font database lookup by family name.
	for _, family := range lookupFamilies {
		if p, err := findfont.Find(family + ".ttf"); err == nil {
			chain = append(chain, FontCandidate{Source: FontSourceLookup, Path: p})
		}
	}

	// 5. Built-in bitmap face, always loadable.
	chain = append(chain, FontCandidate{Source: FontSourceBuiltin})
	return chain
}

// Resolve returns a renderable face at the requested pixel size. It walks the
// candidate chain and returns the first face that loads; it never fails. The
// built-in face ignores the size request and renders at its fixed bitmap
// size, which may look degraded but keeps batch renders alive.
func (r *Resolver) Resolve(explicitPath string, size float64) font.Face {
	for _, c := range r.Chain(explicitPath) {
		if c.Source == FontSourceBuiltin {
			break
		}
		if face, ok := r.load(c.Path, size); ok {
			return face
		}
	}
	return basicfont.Face7x13
}

// ClearCache drops all cached faces. Subsequent resolutions rebuild the
// cache; correctness never depends on cached state.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[faceKey]font.Face)
}

func (r *Resolver) load(path string, size float64) (font.Face, bool) {
	key := faceKey{path: path, size: size}

	r.mu.RLock()
	face, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return face, true
	}

	face, err := LoadFace(path, size)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	r.cache[key] = face
	r.mu.Unlock()
	return face, true
}

// LoadFace loads a TrueType font file as a face at the given pixel size.
// Unlike Resolve it reports failure, which the fonts debug command uses to
// show which chain candidates are actually loadable on the host.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetNotFound, err, "read font %s", path)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse font %s", path)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size}), nil
}
