/*
Package scrollview implements the scroll-state engine behind overlay
scrollbars: synthetic thumbs drawn over a content area whose native
scrollbars are hidden.

# Overview

An Engine owns, per axis, three numbers: the container extent, the content
extent and the scroll position. Everything a host draws is derived from
them on demand by Geometry: how far along the content is scrolled, how long
the thumb is, where it sits on its track, and whether it is shown at all.

The engine never scrolls anything itself. It writes positions to a
ScrollTarget and learns the effective position back through OnNativeScroll,
the same way it learns sizes through OnContainerResize and OnContentResize.
ScrollNode is an in-memory target with clamping, optional spring animation
and asynchronous observers.

# Quick Start

	loop := scrollview.NewLoop()
	node := scrollview.NewScrollNode(loop)
	pan := scrollview.NewPanRecognizer()

	engine := scrollview.New(node, loop,
	    scrollview.Delay(800*time.Millisecond),
	    scrollview.Dispatcher(pan),
	)
	node.Bind(engine)

	overlay := scrollview.NewOverlay(engine, pan, node)
	overlay.SetViewport(scrollview.Rect{W: 800, H: 600})

	node.SetViewportSize(scrollview.Size{Width: 800, Height: 600})
	node.SetContentSize(scrollview.Size{Width: 800, Height: 4000})

	// Frame loop
	for !window.ShouldClose() {
	    glfw.PollEvents()   // input callbacks call overlay.PointerMove etc.
	    loop.RunPending()   // observers, timers, change notifications
	    overlay.Render(renderer)
	}

# Visibility

A thumb is hidden when its axis has nothing to scroll (content no more than
one pixel larger than the container). Otherwise it is shown while any of
these holds: the pointer hovers the viewport (unless the override is
ScrollbarNever, or always with ScrollbarAlways), a thumb drag is active, or
the temporary visibility window is open. The window opens on every
effective size or position change and closes Delay after the last one.

# Dragging and Track Clicks

A pan on a thumb moves the content by the pan distance times the drag
multiplier, (content-container)/(container-thumb), measured from the
position at the start of the drag. A press on the track centres the thumb
under the pointer and hands the press to the thumb's ThumbDispatcher so the
same gesture continues as a drag.

# Change Notifications

Subscribe registers observers for ChangeEvent snapshots. Any number of
mutations within one loop tick produce a single notification carrying the
state after the last of them. Writes that do not change anything never
notify.

# Threading

Engine, ScrollNode, PanRecognizer and Overlay are single-threaded: call
them only from the goroutine that drains their Loop. Loop.Post and
Loop.AfterFunc may be called from any goroutine.

# Logging

The engine logs through zerolog. Without OptLogger it uses a package
console logger at warn level; SetVerbose(true) lowers it to debug.
*/
package scrollview
