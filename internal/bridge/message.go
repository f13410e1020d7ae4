// Package bridge translates engine activity into renderer messages and feeds
// renderer events back into the engine.
package bridge

import (
	"github.com/goccy/go-json"

	"github.com/zeusync/scene/internal/core/ecs"
)

type MessageType string

const (
	MsgAddEntity             MessageType = "addEntity"
	MsgRemoveEntity          MessageType = "removeEntity"
	MsgSetParent             MessageType = "setParent"
	MsgUpdateEntityComponent MessageType = "updateEntityComponent"
	MsgAttachEntityComponent MessageType = "attachEntityComponent"
	MsgRemoveEntityComponent MessageType = "removeEntityComponent"
	MsgComponentCreated      MessageType = "componentCreated"
	MsgComponentDisposed     MessageType = "componentDisposed"
	MsgComponentUpdated      MessageType = "componentUpdated"
)

// Message is one renderer instruction. Only the fields relevant to Type are
// set. Data is the full component snapshot; Patch is an RFC 6902 patch
// against the previously sent snapshot when delta mode is on.
type Message struct {
	Type          MessageType     `json:"type"`
	EntityID      string          `json:"entityId,omitempty"`
	ParentID      string          `json:"parentId,omitempty"`
	ComponentName string          `json:"componentName,omitempty"`
	ComponentID   string          `json:"componentId,omitempty"`
	ClassID       ecs.ClassID     `json:"classId,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	Patch         json.RawMessage `json:"patch,omitempty"`
}

func addEntity(e *ecs.Entity) Message {
	return Message{Type: MsgAddEntity, EntityID: e.ID()}
}

func removeEntity(e *ecs.Entity) Message {
	return Message{Type: MsgRemoveEntity, EntityID: e.ID()}
}

func setParent(e *ecs.Entity, parentID string) Message {
	return Message{Type: MsgSetParent, EntityID: e.ID(), ParentID: parentID}
}

func attachComponent(e *ecs.Entity, name, componentID string) Message {
	return Message{Type: MsgAttachEntityComponent, EntityID: e.ID(), ComponentName: name, ComponentID: componentID}
}

func removeComponent(e *ecs.Entity, name string) Message {
	return Message{Type: MsgRemoveEntityComponent, EntityID: e.ID(), ComponentName: name}
}

func componentCreated(d ecs.DisposableComponent) Message {
	return Message{
		Type:          MsgComponentCreated,
		ComponentID:   d.ComponentID(),
		ComponentName: d.ComponentName(),
		ClassID:       d.ClassID(),
	}
}

func componentDisposed(id string) Message {
	return Message{Type: MsgComponentDisposed, ComponentID: id}
}
