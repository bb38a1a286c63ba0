package core

import (
	"sync"
)

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is a *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is a *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data is a *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data is a *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data is a *MouseEvent.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel scrolled. Data is a *MouseEvent.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data is a *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08
	// Change the render mode for debugging purposes. Data is the mode.
	EVENT_CODE_SET_RENDER_MODE EventCode = 0x0A

	EVENT_CODE_DEBUG0 EventCode = 0x10
	EVENT_CODE_DEBUG1 EventCode = 0x11

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// Invoked on the event processing goroutine, never concurrently.
type FnOnEvent func(context EventContext)

type eventSystemState struct {
	mu       sync.RWMutex
	closed   bool
	handlers map[EventCode][]FnOnEvent
	queue    chan EventContext
	done     chan struct{}
}

var onceEvent sync.Once
var eventState *eventSystemState

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			handlers: make(map[EventCode][]FnOnEvent),
			queue:    make(chan EventContext, 512),
			done:     make(chan struct{}),
		}
	})
	return eventState != nil
}

func EventSystemShutdown() error {
	if eventState == nil {
		return nil
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	if eventState.closed {
		return nil
	}
	eventState.closed = true
	close(eventState.done)
	eventState.handlers = make(map[EventCode][]FnOnEvent)
	return nil
}

// EventRegister subscribes the handler to the given code. Handlers cannot
// be compared in Go, so duplicate registrations are the caller's problem.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	eventState.handlers[code] = append(eventState.handlers[code], onEvent)
	eventState.mu.Unlock()
	return true
}

// EventFire queues the event for the processing goroutine. Returns false
// when the system is down or the queue is saturated; the event is dropped
// in both cases.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	select {
	case eventState.queue <- context:
		return true
	default:
		LogWarn("event queue full, dropping event %#x", uint16(context.Type))
		return false
	}
}

// ProcessEvents dispatches queued events to their handlers until the
// system shuts down. Run it on its own goroutine.
func ProcessEvents() {
	if eventState == nil {
		return
	}
	for {
		select {
		case <-eventState.done:
			return
		case context := <-eventState.queue:
			eventState.mu.RLock()
			handlers := eventState.handlers[context.Type]
			eventState.mu.RUnlock()
			for _, h := range handlers {
				h(context)
			}
		}
	}
}
