package scenes

import (
	"io/fs"
	"log"
	"sync"

	"github.com/furamon/svbattler/assets"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/furamon/svbattler/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// BattleOptions says where the battle scene finds its sheets and formation.
type BattleOptions struct {
	Sheets        fs.FS
	Formation     fs.FS // nil uses the embedded default formation
	FormationPath string
	Saved         *systems.SavedSettings
}

// BattleScene shows a formation of battlers driven by the motion panel.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      BattleOptions
	panel        *ui.MotionPanel
	once         sync.Once
}

func NewBattleScene(sc SceneChanger, options BattleOptions) *BattleScene {
	return &BattleScene{sceneChanger: sc, options: options}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !bs.panel.Contains(x, y) {
			if battler, ok := systems.HitTest(bs.ecs, float64(x), float64(y)); ok {
				systems.Select(bs.ecs, battler)
			}
		}
	}

	bs.ecs.Update()
	bs.panel.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
	bs.panel.Draw(screen)
}

func (bs *BattleScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Collapse blend disabled: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateShortcuts)

	// Battle visuals freeze while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMotionRequests))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollapses))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.UpdateSubstitutes)
	ecs.AddSystem(systems.UpdateHitProxies)

	ecs.AddRenderer(cfg.Default, systems.DrawBattlers)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	bs.ecs = ecs

	factory.CreateSpace(bs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	systems.GetOrCreateSettings(bs.ecs)
	systems.ApplySavedSettings(bs.ecs, bs.options.Saved)

	loader := assets.NewSheetLoader(bs.options.Sheets)
	factory.CreateSheets(bs.ecs, loader)

	formation := bs.loadFormation()
	kinds := make(map[string]cfg.BattlerKindConfig)
	for _, p := range formation.All() {
		kinds[p.Kind] = cfg.BattlerKind(p.Kind)
	}
	loader.Preload(kinds)

	var first *donburi.Entry
	for _, p := range formation.All() {
		battler := factory.CreateBattler(bs.ecs, p)
		factory.CreateSubstitute(bs.ecs, battler)
		if first == nil {
			first = battler
		}
	}

	systems.Select(bs.ecs, first)
	bs.panel = ui.NewMotionPanel(bs.ecs)
}

// loadFormation falls back to the embedded formation when the configured
// one cannot be read.
func (bs *BattleScene) loadFormation() *assets.Formation {
	if bs.options.Formation != nil && bs.options.FormationPath != "" {
		f, err := assets.LoadFormation(bs.options.Formation, bs.options.FormationPath)
		if err == nil {
			return f
		}
		log.Printf("Warning: Using default formation: %v", err)
	}
	f, err := assets.LoadDefaultFormation()
	if err != nil {
		log.Printf("Warning: Default formation unavailable: %v", err)
		return &assets.Formation{}
	}
	return f
}
