package el

// On attaches a handler for the named DOM event.
func On(event string, handler any) Attr {
	return attr("$on", map[string]any{event: handler})
}

// event creates an on* property. The canonicalizer lowercases the event
// name, so "onClick" and "onclick" are equivalent.
func event(name string, handler any) Attr {
	return attr("on"+name, handler)
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Attr { return event("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Attr { return event("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Attr { return event("mouseup", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Attr { return event("mouseleave", handler) }

// OnContextMenu handles contextmenu events.
func OnContextMenu(handler any) Attr { return event("contextmenu", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return event("keyup", handler) }

// Form events

// OnInput handles input events.
func OnInput(handler any) Attr { return event("input", handler) }

// OnChange handles change events.
func OnChange(handler any) Attr { return event("change", handler) }

// OnSubmit handles submit events.
func OnSubmit(handler any) Attr { return event("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return event("blur", handler) }

// Popover and dialog events

// OnToggle handles toggle events.
func OnToggle(handler any) Attr { return event("toggle", handler) }

// OnClose handles dialog close events.
func OnClose(handler any) Attr { return event("close", handler) }
