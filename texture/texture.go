package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	shader "github.com/silvester747/vimshady/shader"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoMatch reports that no file in the texture directory matches a sampler
// uniform's stem. It is soft: the uniform is left unbound and rendering
// continues.
var ErrNoMatch = errors.New("no matching texture file")

// Bindings maps a program's sampler uniform names to uploaded GL textures.
// A set of bindings belongs to exactly one program and is fully rebuilt
// whenever the active program or the texture directory changes.
type Bindings struct {
	textures map[string]uint32
}

// Reload resolves and uploads a texture for every tex-prefixed uniform in the
// program's table. Missing or undecodable files are logged and skipped; the
// corresponding uniform stays unbound. Reload never fails as a whole.
func Reload(p *shader.Program, dir string) *Bindings {
	b := &Bindings{textures: make(map[string]uint32)}
	for _, name := range p.Samplers() {
		stem := strings.TrimPrefix(name, shader.SamplerPrefix)
		path, err := Resolve(dir, stem)
		if err != nil {
			log.Printf("Cannot find texture for %s: %v", name, err)
			continue
		}
		id, err := upload(path)
		if err != nil {
			log.Printf("Cannot load texture %s for %s: %v", path, name, err)
			continue
		}
		b.textures[name] = id
	}
	return b
}

// Resolve searches dir for a file whose stem case-insensitively matches,
// with any extension. The first match in directory enumeration order wins;
// ties between same-stem files are not defined to be deterministic.
func Resolve(dir, stem string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoMatch, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSuffix(entry.Name(), ext), stem) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %s.* in %s", ErrNoMatch, stem, dir)
}

// vflip reverses the row order of an RGBA image. Decoded images store the
// top row first, but GL places the first transferred row at texture
// coordinate v=0, the bottom of the quad.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// upload decodes an image file and creates a GL texture for it. Textures are
// stored as sRGB with alpha and repeat on both wrap axes.
func upload(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
	rgba = vflip(rgba)
	width := int32(rgba.Rect.Size().X)
	height := int32(rgba.Rect.Size().Y)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.SRGB8_ALPHA8,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// Bind binds each resolved texture to the unit given by its sampler's index
// in the program's sampler list and points the sampler uniform at that unit.
// Unresolved samplers are skipped and keep the texturing unit's default
// state. The program must be in use.
func (b *Bindings) Bind(p *shader.Program) {
	for unit, name := range p.Samplers() {
		id, ok := b.textures[name]
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, id)
		p.SetInt(name, int32(unit))
	}
}

// Len reports how many samplers resolved to a texture.
func (b *Bindings) Len() int {
	return len(b.textures)
}

// Destroy releases every GL texture owned by the bindings.
func (b *Bindings) Destroy() {
	for _, id := range b.textures {
		gl.DeleteTextures(1, &id)
	}
	b.textures = make(map[string]uint32)
}
