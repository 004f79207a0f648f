package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
)

// Strategy is one way of obtaining a font face
type Strategy interface {
	Name() string
	Face(size int) (font.Face, error)
}

// Resolver tries its strategies in order and returns the first face that loads
type Resolver struct {
	strategies []Strategy
	log        zerolog.Logger
}

// NewResolver creates a resolver over the given strategies
func NewResolver(log zerolog.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		log:        log,
	}
}

// DefaultStrategies returns the system family first, then the built-in faces
func DefaultStrategies(family string) []Strategy {
	return []Strategy{
		&SystemFont{Family: family, Dirs: SystemFontDirs()},
		GoRegular{},
		Basic{},
	}
}

// Resolve returns a face at size along with the name of the strategy that produced it
func (r *Resolver) Resolve(size int) (font.Face, string, error) {
	var errs []error
	for _, s := range r.strategies {
		face, err := s.Face(size)
		if err == nil {
			return face, s.Name(), nil
		}
		r.log.Debug().Err(err).Str("strategy", s.Name()).Msg("font strategy failed")
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return nil, "", fmt.Errorf("%w: %v", domain.ErrFontUnavailable, errors.Join(errs...))
}

// SystemFont loads a TrueType/OpenType file by name from the OS font directories.
// Family may also be an explicit path to a font file.
type SystemFont struct {
	Family string
	Dirs   []string
}

func (s *SystemFont) Name() string {
	return s.Family
}

func (s *SystemFont) Face(size int) (font.Face, error) {
	if s.Family == "" {
		return nil, errors.New("no font family configured")
	}

	path := s.Family
	if _, err := os.Stat(path); err != nil {
		path = FindFont(s.Family, s.Dirs)
	}
	if path == "" {
		return nil, fmt.Errorf("font %q not found", s.Family)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	f, err := parseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return newFace(f, size)
}

// GoRegular uses the Go Regular face embedded in golang.org/x/image
type GoRegular struct{}

func (GoRegular) Name() string {
	return "Go Regular (built-in)"
}

func (GoRegular) Face(size int) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return newFace(f, size)
}

// Basic is the fixed 7x13 bitmap face. It ignores the requested size.
type Basic struct{}

func (Basic) Name() string {
	return "basic 7x13 (built-in)"
}

func (Basic) Face(int) (font.Face, error) {
	return basicfont.Face7x13, nil
}

func parseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err == nil {
		return f, nil
	}

	// .ttc collections
	collection, cerr := opentype.ParseCollection(data)
	if cerr != nil {
		return nil, err
	}
	return collection.Font(0)
}

func newFace(f *opentype.Font, size int) (font.Face, error) {
	// 72 DPI makes the point size equal to the pixel size
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// SystemFontDirs returns the common font directories for the current OS
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		dirs := []string{`C:\Windows\Fonts`}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	default:
		return []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts")}
	}
}

// FindFont searches dirs recursively for filename, ignoring case.
// Returns "" when nothing matches.
func FindFont(filename string, dirs []string) string {
	lower := strings.ToLower(filename)

	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		var found string
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// unreadable subtree
				return nil
			}
			if !d.IsDir() && strings.ToLower(d.Name()) == lower {
				found = path
				return fs.SkipAll
			}
			return nil
		})

		if found != "" {
			return found
		}
	}
	return ""
}
