package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/fonts"
	"github.com/furamon/svbattler/scenes"
	"github.com/furamon/svbattler/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(options scenes.BattleOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewBattleScene(g, options)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	sheetsDir := flag.String("sheets", "img", "directory holding the sv_actors sheets")
	formation := flag.String("formation", "", "Tiled map with Actors and Enemies object groups (default: embedded)")
	kinds := flag.String("battlers", "", "YAML file adding or overriding battler kinds")
	debug := flag.Bool("debug", false, "draw frame rects, visible bounds and hit proxies")
	logDecoder := flag.Bool("log-decoder", false, "log every decoded motion slot")
	noSave := flag.Bool("no-save", false, "do not load or save display settings")
	flag.Parse()

	config.Debug.ShowBounds = *debug
	config.Debug.LogDecoder = *logDecoder

	if *kinds != "" {
		n, err := config.LoadBattlerKinds(os.DirFS(filepath.Dir(*kinds)), filepath.Base(*kinds))
		if err != nil {
			log.Fatalf("Failed to load battler kinds: %v", err)
		}
		log.Printf("Loaded %d battler kinds from %s", n, *kinds)
	}

	if err := fonts.LoadDefaults(config.UI.FontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	options := scenes.BattleOptions{Sheets: os.DirFS(*sheetsDir)}
	if *formation != "" {
		options.Formation = os.DirFS(filepath.Dir(*formation))
		options.FormationPath = filepath.Base(*formation)
	}

	if !*noSave {
		if err := systems.InitPersistence(config.DisplaySettings.AppName); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			options.Saved = saved
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("svbattler")

	if err := ebiten.RunGame(NewGame(options)); err != nil {
		log.Fatal(err)
	}
}
