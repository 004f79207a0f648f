package mocks

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
)

// MockMetadataDecoder is a mock implementation of the MetadataDecoder interface for testing
type MockMetadataDecoder struct {
	Metadata domain.Metadata
	Err      error
	Calls    int
}

// NewMockMetadataDecoder creates a decoder that returns meta
func NewMockMetadataDecoder(meta domain.Metadata) *MockMetadataDecoder {
	return &MockMetadataDecoder{Metadata: meta}
}

// Decode returns the configured metadata or error
func (m *MockMetadataDecoder) Decode(r io.Reader) (domain.Metadata, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Metadata, nil
}

// MockImageCodec keeps saved images in memory
type MockImageCodec struct {
	mu      sync.Mutex
	Image   image.Image
	OpenErr error
	SaveErr error
	saved   map[string]image.Image
	order   []string
}

// NewMockImageCodec creates a codec whose Open returns img
func NewMockImageCodec(img image.Image) *MockImageCodec {
	return &MockImageCodec{
		Image: img,
		saved: make(map[string]image.Image),
	}
}

// Open returns the configured image
func (m *MockImageCodec) Open(path string) (image.Image, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Image == nil {
		return nil, fmt.Errorf("no image configured for %s", path)
	}
	return m.Image, nil
}

// Save records img under path, replacing any earlier save
func (m *MockImageCodec) Save(img image.Image, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saved[path] = img
	m.order = append(m.order, path)
	return nil
}

// Saved returns the last image saved at path
func (m *MockImageCodec) Saved(path string) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	img, ok := m.saved[path]
	return img, ok
}

// SaveCount returns how many times Save succeeded
func (m *MockImageCodec) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}

// MockFontResolver returns a fixed face
type MockFontResolver struct {
	Face      font.Face
	Name      string
	Err       error
	Requested []int
}

// NewMockFontResolver creates a resolver returning the basic 7x13 face
func NewMockFontResolver() *MockFontResolver {
	return &MockFontResolver{
		Face: basicfont.Face7x13,
		Name: "mock",
	}
}

// Resolve records the requested size and returns the configured face
func (m *MockFontResolver) Resolve(size int) (font.Face, string, error) {
	m.Requested = append(m.Requested, size)
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Face, m.Name, nil
}

// DrawCall records one MockTextRenderer.Draw invocation
type DrawCall struct {
	Text  string
	At    image.Point
	Color color.Color
}

// MockTextRenderer reports a fixed text box and records draw calls
type MockTextRenderer struct {
	Box   image.Rectangle
	Draws []DrawCall
}

// NewMockTextRenderer creates a renderer whose text box is w x h
func NewMockTextRenderer(w, h int) *MockTextRenderer {
	return &MockTextRenderer{Box: image.Rect(0, -h, w, 0)}
}

// Measure returns the configured box
func (m *MockTextRenderer) Measure(face font.Face, text string) image.Rectangle {
	return m.Box
}

// Draw records the call and fills the text box with c
func (m *MockTextRenderer) Draw(dst draw.Image, face font.Face, text string, at image.Point, c color.Color) {
	m.Draws = append(m.Draws, DrawCall{Text: text, At: at, Color: c})
	rect := image.Rect(at.X, at.Y, at.X+m.Box.Dx(), at.Y+m.Box.Dy())
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
