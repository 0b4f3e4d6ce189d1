package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui interface for the settings panel.
type SettingsUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnClose func()

	// Current values
	fullscreen      bool
	resolutionIndex int
	drawRays        bool

	// Widget references for updates
	fullscreenButton *widget.Button
	resolutionButton *widget.Button
	drawRaysButton   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSettingsUI creates the settings panel with ebitenui.
func NewSettingsUI(onClose func()) *SettingsUI {
	sui := &SettingsUI{
		OnClose:  onClose,
		drawRays: cfg.Debug.DrawRays,
	}
	if saved, _ := systems.LoadSettings(); saved != nil {
		sui.fullscreen = saved.Fullscreen
		sui.resolutionIndex = saved.ResolutionIndex
		sui.drawRays = saved.DrawRays
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit the 640x360 screen
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.fullscreenButton = sui.settingRow(contentContainer, "Fullscreen:", sui.fullscreenLabel(), func() {
		sui.fullscreen = !sui.fullscreen
		ebiten.SetFullscreen(sui.fullscreen)
		sui.UpdateUI()
	})

	sui.resolutionButton = sui.settingRow(contentContainer, "Resolution:", sui.resolutionLabel(), func() {
		sui.resolutionIndex = (sui.resolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
		if !sui.fullscreen {
			res := cfg.SettingsMenu.Resolutions[sui.resolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
		sui.UpdateUI()
	})

	sui.drawRaysButton = sui.settingRow(contentContainer, "Hit rays:", sui.drawRaysLabel(), func() {
		sui.drawRays = !sui.drawRays
		cfg.Debug.DrawRays = sui.drawRays
		sui.UpdateUI()
	})

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.save()
			if sui.OnClose != nil {
				sui.OnClose()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// settingRow builds a "label: [value]" row whose button cycles the value.
func (sui *SettingsUI) settingRow(parent *widget.Container, name, value string, onClick func()) *widget.Button {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(value, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 100, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	row.AddChild(button)

	parent.AddChild(row)
	return button
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) fullscreenLabel() string {
	if sui.fullscreen {
		return "On"
	}
	return "Off"
}

func (sui *SettingsUI) resolutionLabel() string {
	if sui.resolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		return cfg.SettingsMenu.Resolutions[sui.resolutionIndex].Label
	}
	return "?"
}

func (sui *SettingsUI) drawRaysLabel() string {
	if sui.drawRays {
		return "Shown"
	}
	return "Hidden"
}

// UpdateUI refreshes the value buttons to match the current settings.
func (sui *SettingsUI) UpdateUI() {
	if sui.fullscreenButton != nil {
		if textWidget := sui.fullscreenButton.Text(); textWidget != nil {
			textWidget.Label = sui.fullscreenLabel()
		}
	}
	if sui.resolutionButton != nil {
		if textWidget := sui.resolutionButton.Text(); textWidget != nil {
			textWidget.Label = sui.resolutionLabel()
		}
	}
	if sui.drawRaysButton != nil {
		if textWidget := sui.drawRaysButton.Text(); textWidget != nil {
			textWidget.Label = sui.drawRaysLabel()
		}
	}
}

func (sui *SettingsUI) save() {
	_ = systems.SaveSettings(&systems.SavedSettings{
		Fullscreen:      sui.fullscreen,
		ResolutionIndex: sui.resolutionIndex,
		DrawRays:        sui.drawRays,
	})
}

// Update advances the UI for this frame.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

// Draw renders the UI onto the screen.
func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
