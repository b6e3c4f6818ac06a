package ui

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const sleepStatus = "sleep"

// MotionPanel is the side panel of the battle showcase. It raises motion
// requests and health changes for the selected battler.
type MotionPanel struct {
	UI *ebitenui.UI

	ecs *ecs.ECS

	// Widget references for updates
	selectionLabel *widget.Label
	motionLabel    *widget.Label
	healthLabel    *widget.Label
	guardButton    *widget.Button
	chantButton    *widget.Button
	sleepButton    *widget.Button
	appearButton   *widget.Button
	debugButton    *widget.Button
	mirrorButton   *widget.Button
	speedButton    *widget.Button
	gaugeButton    *widget.Button
	battlerButtons []*widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewMotionPanel builds the panel for the battlers already in the world.
func NewMotionPanel(e *ecs.ECS) *MotionPanel {
	mp := &MotionPanel{ecs: e}
	mp.loadFonts()
	mp.buildUI()
	return mp
}

func (mp *MotionPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	mp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
	mp.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.SmallFontSize,
	}
}

// Selected returns the battler the panel's buttons act on, or nil.
func (mp *MotionPanel) Selected() *donburi.Entry {
	return systems.Selected(mp.ecs)
}

// Contains reports whether a screen point lies on the panel.
func (mp *MotionPanel) Contains(x, y int) bool {
	return x >= cfg.C.Width-cfg.UI.PanelWidth
}

func (mp *MotionPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.PanelWidth, cfg.C.Height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	mp.selectionLabel = mp.label(mp.normalFace, "No battler selected")
	mp.motionLabel = mp.label(mp.smallFace, "")
	mp.healthLabel = mp.label(mp.smallFace, "")
	panel.AddChild(mp.selectionLabel)
	panel.AddChild(mp.motionLabel)
	panel.AddChild(mp.healthLabel)

	panel.AddChild(mp.buildBattlerButtons())

	panel.AddChild(mp.label(mp.smallFace, "Motions"))
	var motionButtons []*widget.Button
	for _, m := range cfg.Motions {
		name := m.Name
		motionButtons = append(motionButtons, mp.button(name, func() {
			if b := mp.Selected(); b != nil {
				systems.RequestMotion(b, name)
			}
		}))
	}
	mp.addRows(panel, motionButtons)

	panel.AddChild(mp.label(mp.smallFace, "Battle"))
	mp.guardButton = mp.button("Guard", mp.toggleGuard)
	mp.chantButton = mp.button("Chant", mp.toggleChant)
	mp.sleepButton = mp.button("Sleep", mp.toggleSleep)
	mp.appearButton = mp.button("Hide", mp.toggleAppeared)
	mp.addRows(panel, []*widget.Button{
		mp.button("Hit", mp.hit),
		mp.button("Evade", mp.evade),
		mp.button("Heal", mp.heal),
		mp.button("Collapse", mp.collapse),
		mp.guardButton,
		mp.chantButton,
		mp.sleepButton,
		mp.appearButton,
		mp.button("Respawn", mp.respawn),
	})

	panel.AddChild(mp.label(mp.smallFace, "Display"))
	mp.debugButton = mp.button("", mp.toggleDebug)
	mp.mirrorButton = mp.button("", mp.toggleMirror)
	mp.speedButton = mp.button("", mp.cycleSpeed)
	mp.gaugeButton = mp.button("", mp.toggleGauges)
	mp.addRows(panel, []*widget.Button{mp.debugButton, mp.mirrorButton, mp.speedButton, mp.gaugeButton})

	rootContainer.AddChild(panel)

	mp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildBattlerButtons adds one select button per battler of the formation.
func (mp *MotionPanel) buildBattlerButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
	var buttons []*widget.Button
	components.Battler.Each(mp.ecs.World, func(e *donburi.Entry) {
		entity := e.Entity()
		buttons = append(buttons, mp.button(components.Battler.Get(e).Name, func() {
			if mp.ecs.World.Valid(entity) {
				systems.Select(mp.ecs, mp.ecs.World.Entry(entity))
			}
		}))
	})
	mp.battlerButtons = buttons
	mp.addRows(container, buttons)
	return container
}

// addRows lays buttons out two per row.
func (mp *MotionPanel) addRows(parent *widget.Container, buttons []*widget.Button) {
	for i := 0; i < len(buttons); i += 2 {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			)),
		)
		row.AddChild(buttons[i])
		if i+1 < len(buttons) {
			row.AddChild(buttons[i+1])
		}
		parent.AddChild(row)
	}
}

func (mp *MotionPanel) label(face text.Face, s string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &face, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
}

func (mp *MotionPanel) button(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonWidth, cfg.UI.ButtonHeight),
		),
		widget.ButtonOpts.Image(mp.buttonImage()),
		widget.ButtonOpts.Text(s, &mp.smallFace, &widget.ButtonTextColor{
			Idle:     cfg.UI.TextColor,
			Disabled: cfg.UI.ButtonDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mp *MotionPanel) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.UI.ButtonDisabled),
	}
}

func (mp *MotionPanel) hit() {
	if b := mp.Selected(); b != nil {
		systems.Hit(b, cfg.UI.DamageAmount)
	}
}

func (mp *MotionPanel) evade() {
	if b := mp.Selected(); b != nil {
		systems.Evade(b)
	}
}

func (mp *MotionPanel) heal() {
	if b := mp.Selected(); b != nil {
		systems.Revive(mp.ecs, b)
	}
}

func (mp *MotionPanel) collapse() {
	if b := mp.Selected(); b != nil && components.Health.Get(b).Dead() {
		systems.StartCollapse(b)
	}
}

func (mp *MotionPanel) respawn() {
	if b := mp.Selected(); b != nil {
		factory.DestroySubstitute(mp.ecs, b)
		factory.CreateSubstitute(mp.ecs, b)
	}
}

func (mp *MotionPanel) toggleGuard() {
	if b := mp.Selected(); b != nil {
		d := components.Battler.Get(b)
		d.Guarding = !d.Guarding
	}
}

func (mp *MotionPanel) toggleChant() {
	if b := mp.Selected(); b != nil {
		d := components.Battler.Get(b)
		d.Chanting = !d.Chanting
	}
}

func (mp *MotionPanel) toggleSleep() {
	b := mp.Selected()
	if b == nil {
		return
	}
	d := components.Battler.Get(b)
	if hasStatus(d, sleepStatus) {
		d.RemoveStatus(sleepStatus)
		return
	}
	d.AddStatus(components.Status{ID: sleepStatus, ForcedMotion: cfg.Sleep.Definition().Name})
}

func (mp *MotionPanel) toggleAppeared() {
	if b := mp.Selected(); b != nil {
		d := components.Battler.Get(b)
		d.Appeared = !d.Appeared
	}
}

func (mp *MotionPanel) toggleDebug() {
	s := systems.GetOrCreateSettings(mp.ecs)
	s.Debug = !s.Debug
	systems.SaveCurrentSettings(mp.ecs)
}

func (mp *MotionPanel) toggleMirror() {
	s := systems.GetOrCreateSettings(mp.ecs)
	s.MirrorEnemies = !s.MirrorEnemies
	systems.SaveCurrentSettings(mp.ecs)
}

func (mp *MotionPanel) cycleSpeed() {
	s := systems.GetOrCreateSettings(mp.ecs)
	scales := cfg.DisplaySettings.SpeedScales
	next := scales[0]
	for i, v := range scales {
		if v == s.SpeedScale {
			next = scales[(i+1)%len(scales)]
			break
		}
	}
	s.SpeedScale = next
	systems.SaveCurrentSettings(mp.ecs)
}

func (mp *MotionPanel) toggleGauges() {
	s := systems.GetOrCreateSettings(mp.ecs)
	s.ShowGauges = !s.ShowGauges
	systems.SaveCurrentSettings(mp.ecs)
}

func hasStatus(d *components.BattlerData, id string) bool {
	for _, s := range d.Statuses {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Update refreshes labels and button states, then runs the UI.
func (mp *MotionPanel) Update() {
	mp.UpdateUI()
	mp.UI.Update()
}

func (mp *MotionPanel) Draw(screen *ebiten.Image) {
	mp.UI.Draw(screen)
}

// UpdateUI syncs the panel with the selected battler and the settings.
func (mp *MotionPanel) UpdateUI() {
	settings := systems.GetOrCreateSettings(mp.ecs)
	setText(mp.debugButton, onOff("Debug", settings.Debug))
	setText(mp.mirrorButton, onOff("Mirror", settings.MirrorEnemies))
	setText(mp.speedButton, fmt.Sprintf("Frames x%g", settings.SpeedScale))
	setText(mp.gaugeButton, onOff("Gauges", settings.ShowGauges))

	b := mp.Selected()
	for _, btn := range []*widget.Button{mp.guardButton, mp.chantButton, mp.sleepButton, mp.appearButton} {
		btn.GetWidget().Disabled = b == nil
	}
	if b == nil {
		mp.selectionLabel.Label = "No battler selected"
		mp.motionLabel.Label = ""
		mp.healthLabel.Label = ""
		return
	}

	d := components.Battler.Get(b)
	h := components.Health.Get(b)
	mp.selectionLabel.Label = fmt.Sprintf("%s (%s)", d.Name, d.Side)
	mp.healthLabel.Label = fmt.Sprintf("HP %d/%d", h.Current, h.Max)
	mp.motionLabel.Label = motionText(b)

	setText(mp.guardButton, onOff("Guard", d.Guarding))
	setText(mp.chantButton, onOff("Chant", d.Chanting))
	setText(mp.sleepButton, onOff("Sleep", hasStatus(d, sleepStatus)))
	if d.Appeared {
		setText(mp.appearButton, "Hide")
	} else {
		setText(mp.appearButton, "Appear")
	}
}

func motionText(b *donburi.Entry) string {
	sub := factory.SubstituteOf(b)
	if sub == nil {
		return "no substitute"
	}
	anim := components.Animation.Get(sub)
	if anim.Sheet == nil || !anim.Sheet.Ready() {
		return "sheet missing"
	}
	if c := components.Collapse.Get(sub); c.Started() {
		return fmt.Sprintf("collapse %s", c.Variant)
	}
	if anim.DefeatPose {
		return "defeated"
	}
	st := anim.State
	if !st.Playing() {
		return "idle"
	}
	return fmt.Sprintf("%s %d/%d (%s)", st.Motion.Name, st.Pattern()+1, st.Info.FrameCount, anim.Sheet.Layout.Mode)
}

func onOff(name string, on bool) string {
	if on {
		return name + ": on"
	}
	return name + ": off"
}

func setText(btn *widget.Button, s string) {
	if btn == nil {
		return
	}
	if textWidget := btn.Text(); textWidget != nil {
		textWidget.Label = s
	}
}
