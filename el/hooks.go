package el

// Hook registers a snabbdom lifecycle hook. Repeated Hook arguments merge.
func Hook(name string, fn any) Attr {
	return attr("$hook", map[string]any{name: fn})
}

// OnInit runs before the element is created.
func OnInit(fn any) Attr { return Hook("init", fn) }

// OnCreate runs after the DOM element is created.
func OnCreate(fn any) Attr { return Hook("create", fn) }

// OnInsert runs after the element is inserted into the document.
func OnInsert(fn any) Attr { return Hook("insert", fn) }

// OnUpdate runs when the element is patched.
func OnUpdate(fn any) Attr { return Hook("update", fn) }

// OnRemove runs when the element is removed from its parent.
func OnRemove(fn any) Attr { return Hook("remove", fn) }

// OnDestroy runs when the element or an ancestor is removed.
func OnDestroy(fn any) Attr { return Hook("destroy", fn) }
