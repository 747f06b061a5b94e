package knob

// PanelBackground fills a region with the style's panel colors.
// Draw it before the widgets that sit on top of it.
func (ctx *Context) PanelBackground(rect Rect) {
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.PanelColor)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.PanelBorderColor, 1)
}
