package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/pkg/gravity"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPlayerNameLength = 10

type MenuScene struct {
	*BaseScene

	onStart    func(playerName string, startLevel uint32) error
	ui         *ebitenui.UI
	playerName string
	startLevel uint32
	startErr   string
}

type MenuSceneOptions struct {
	// PlayerName pre-fills the name input.
	PlayerName string
	// StartLevel is the initially selected level.
	StartLevel uint32
	// OnStart is called when the start button is pressed.
	OnStart func(playerName string, startLevel uint32) error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	if opts.OnStart == nil {
		return nil, fmt.Errorf("menu scene requires an OnStart handler")
	}
	return &MenuScene{
		BaseScene:  NewBaseScene(objects.NewTextOverlayObject("menu-title", "Blockfall", &objects.NewTextOverlayObjectOptions{OffsetY: -170})),
		onStart:    opts.OnStart,
		playerName: opts.PlayerName,
		startLevel: opts.StartLevel,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}

	fontFace := fonts.MPlusNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   160,
				Right:  160,
				Bottom: 90,
			}))),
	)

	nameTextInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("Name"),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			s.playerName = args.InputText
		}),
	)
	nameTextInput.SetText(s.playerName)
	rootContainer.AddChild(nameTextInput)

	levelContainer := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	levelText := widget.NewText(
		widget.TextOpts.Text(s.levelLabel(), fontFace, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	levelButton := func(label string, delta int) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.TextPadding(widget.Insets{Left: 12, Right: 12, Top: 2, Bottom: 2}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.changeLevel(delta)
				levelText.Label = s.levelLabel()
			}),
		)
	}
	levelContainer.AddChild(levelButton("-", -1))
	levelContainer.AddChild(levelText)
	levelContainer.AddChild(levelButton("+", 1))
	rootContainer.AddChild(levelContainer)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Start", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(button)

	if s.startErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.startErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.startErr = ""
	}

	nameTextInput.Focus(true)

	startHandler := func(args interface{}) {
		name := strings.TrimSpace(nameTextInput.GetText())
		if len(name) > maxPlayerNameLength {
			name = name[:maxPlayerNameLength]
		}
		if err := s.onStart(name, s.startLevel); err != nil {
			log.Error("Failed to start game: %v", err)
			s.startErr = "Failed to start game. Please try again."
			s.renderUI()
		}
	}
	nameTextInput.SubmitEvent.AddHandler(startHandler)
	button.ClickedEvent.AddHandler(startHandler)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) changeLevel(delta int) {
	level := int(s.startLevel) + delta
	if level < 0 || level > int(gravity.MaxLevel) {
		return
	}
	s.startLevel = uint32(level)
}

func (s *MenuScene) levelLabel() string {
	return fmt.Sprintf("Level %02d", s.startLevel)
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
