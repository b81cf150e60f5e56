package main

import (
	"image/color"
	"log"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/session"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// pauseUI holds the ebitenui tree for the menu's main page. It is rebuilt
// whenever the keyboard selection moves so the highlight follows it.
type pauseUI struct {
	ui       *ebitenui.UI
	selected int
}

func (p *pauseUI) sync(g *Game, m *session.Menu) {
	if p.ui != nil && p.selected == m.Selected() {
		return
	}
	p.selected = m.Selected()
	p.ui = NewPauseUI(g, m)
}

// NewPauseUI builds the centered pause panel: a title and one button per
// menu option, the selected one in pink.
func NewPauseUI(g *Game, m *session.Menu) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	selectedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{A: 0xff}}

	title := widget.NewText(
		widget.TextOpts.Text(session.PageMain.String(), &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	for i, opt := range m.Options() {
		idle := btnImg
		if i == m.Selected() {
			idle = selectedImg
		}
		index := i
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: selectedImg, Pressed: selectedImg}),
			widget.ButtonOpts.Text(opt, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(300, 40),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if err := g.session.ChooseMenuOption(index); err != nil {
					log.Printf("pause menu: %v", err)
				}
			}),
		)
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
