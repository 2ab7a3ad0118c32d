package tether

// PointerKind identifies a kind of pointer event delivered by a Document.
type PointerKind uint8

const (
	PointerDown PointerKind = iota // a button or touch was pressed
	PointerMove                    // the pointer moved
	PointerUp                      // the press was released
)

// PointerEvent is one pointer sample in page coordinates: CSS pixels measured
// from the document origin, scroll included.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64

	consumed bool
}

// Consume marks the event as handled so the host can suppress its default
// behavior (text selection, native dragging).
func (e *PointerEvent) Consume() { e.consumed = true }

// Consumed reports whether a handler consumed the event.
func (e *PointerEvent) Consumed() bool { return e.consumed }

// Element is one anchor element of a Document.
type Element interface {
	// BoundingRect returns the element's current rectangle in viewport
	// coordinates (CSS pixels, scroll excluded).
	BoundingRect() Rect
	// HasParent reports whether the element is attached to a parent in the
	// document tree. Detached or root elements cannot anchor content.
	HasParent() bool
}

// Document is the platform an Overlay runs against. It abstracts the host
// page: element lookup, viewport and scroll metrics, event subscription, and
// the canvas host the overlay draws into.
//
// Subscriptions return a remove function; the overlay releases every
// subscription it took on Dispose. Implementations are expected to deliver
// events on the same goroutine that drives Update and Draw.
type Document interface {
	// ElementByAnchor resolves an anchor identifier to its element.
	// Returns nil when no element carries the identifier.
	ElementByAnchor(id string) Element

	// ViewportSize returns the visible viewport size in CSS pixels.
	ViewportSize() (w, h float64)
	// DocumentSize returns the full scrollable document size in CSS pixels.
	DocumentSize() (w, h float64)
	// ScrollPosition returns the current scroll offset in CSS pixels.
	ScrollPosition() (x, y float64)
	// DevicePixelRatio returns the ratio of device pixels to CSS pixels.
	DevicePixelRatio() float64

	// OnResize registers fn to run when the viewport size changes.
	OnResize(fn func()) (remove func())
	// OnScroll registers fn to run when the scroll position changes.
	OnScroll(fn func()) (remove func())
	// OnPointer registers fn to receive pointer input.
	OnPointer(fn func(*PointerEvent)) (remove func())

	// SetCanvasSize sets the CSS display size of the overlay canvas.
	SetCanvasSize(w, h float64)
	// SetCanvasTranslation positions the canvas relative to the viewport.
	SetCanvasTranslation(x, y float64)
	// SetContainerSize sets the size of the layout container surrounding
	// the canvas.
	SetContainerSize(w, h float64)
	// DetachContainer removes the overlay container from the document flow
	// so its own size does not count toward DocumentSize.
	DetachContainer()
	// AttachContainer reinserts the container after DetachContainer.
	AttachContainer()
}
