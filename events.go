package turtle

// EventType identifies which operation just took effect. One value exists per
// public operation; listeners registered with On receive it synchronously
// after the operation's effect has been applied. Queued operations notify at
// replay time, when the effect actually happens, not when they are queued.
type EventType uint8

const (
	EventForward EventType = iota
	EventBackward
	EventLeft
	EventRight
	EventSetAngle
	EventGoto
	EventHide
	EventShow
	EventPenUp
	EventPenDown
	EventPenToggle
	EventReset
	EventClear
	EventSetColor
	EventSetWidth
	EventSetShape
	EventSetSpeed
	EventSetLineCap
)

var eventNames = [...]string{
	EventForward:    "forward",
	EventBackward:   "backward",
	EventLeft:       "left",
	EventRight:      "right",
	EventSetAngle:   "setangle",
	EventGoto:       "goto",
	EventHide:       "hide",
	EventShow:       "show",
	EventPenUp:      "penup",
	EventPenDown:    "pendown",
	EventPenToggle:  "pentoggle",
	EventReset:      "reset",
	EventClear:      "clear",
	EventSetColor:   "setcolor",
	EventSetWidth:   "setwidth",
	EventSetShape:   "setshape",
	EventSetSpeed:   "setspeed",
	EventSetLineCap: "setlinecap",
}

// String returns the operation name for the event.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// On registers a change listener. Listeners run synchronously on the same
// logical thread as the operation; they may read turtle state freely, and any
// operation they invoke goes through the normal dispatch rule.
func (t *Turtle) On(fn func(EventType)) *Turtle {
	if fn != nil {
		t.listeners = append(t.listeners, fn)
	}
	return t
}

// emit notifies all listeners that an operation's effect was applied.
func (t *Turtle) emit(e EventType) {
	for _, fn := range t.listeners {
		fn(e)
	}
}
