package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// BlendShader mixes a blend color into a sprite and fades it; used by
	// collapsing battlers.
	BlendShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/blend.kage")
	if err != nil {
		return fmt.Errorf("read blend shader: %w", err)
	}
	BlendShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile blend shader: %w", err)
	}
	return nil
}
