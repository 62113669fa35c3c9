package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A photo texture was ingested. Data is the opaque texture handle (string).
	EVENT_CODE_PHOTO_ADDED SystemEventCode = 0x02

	// The display mode changed. Data is the new mode value.
	EVENT_CODE_MODE_CHANGED SystemEventCode = 0x03

	// The tuning configuration was reloaded from disk.
	EVENT_CODE_CONFIG_RELOADED SystemEventCode = 0x04

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// EventContext carries one fired event to its listeners.
type EventContext struct {
	Type SystemEventCode
	Data interface{}
}

// Should return true if handled; a handled event is not passed on to any
// more listeners.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.Mutex
	registered map[SystemEventCode][]*registeredEvent
}

var onceEvent sync.Once
var isInitialized bool = false
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	if isInitialized {
		return false
	}
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[SystemEventCode][]*registeredEvent),
		}
	})
	isInitialized = true
	return true
}

func EventSystemShutdown() error {
	if !isInitialized {
		return nil
	}
	eventState.mu.Lock()
	eventState.registered = make(map[SystemEventCode][]*registeredEvent)
	eventState.mu.Unlock()
	isInitialized = false
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listener/callback combos will not be registered again and will cause this to return FALSE.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if !isInitialized {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("duplicate listener registration for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns FALSE.
 */
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	if !isInitialized {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * TRUE, the event is considered handled and is not passed on to any more listeners.
 */
func EventFire(context EventContext) bool {
	if !isInitialized {
		return false
	}
	eventState.mu.Lock()
	events := make([]*registeredEvent, len(eventState.registered[context.Type]))
	copy(events, eventState.registered[context.Type])
	eventState.mu.Unlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}
