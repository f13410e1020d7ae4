package ecs

import "github.com/rotisserie/eris"

// Contract violations. Every operation that returns one of these leaves the
// entity graph, the component tables and the registry unchanged.
var (
	ErrNilEntity             = eris.New("entity is nil")
	ErrNilComponent          = eris.New("component is nil")
	ErrForeignEntity         = eris.New("entity belongs to another engine")
	ErrNotInEngine           = eris.New("entity is not added to the engine")
	ErrRootEntity            = eris.New("operation not allowed on the root entity")
	ErrSelfParent            = eris.New("entity cannot be its own parent")
	ErrCircularParent        = eris.New("parent would create a cycle")
	ErrComponentExists       = eris.New("component already exists on entity")
	ErrComponentNotFound     = eris.New("component not found on entity")
	ErrComponentType         = eris.New("component has unexpected type")
	ErrUnknownField          = eris.New("field is not declared")
	ErrReadonlyField         = eris.New("field is read-only")
	ErrInvalidReference      = eris.New("field expects a disposable component")
	ErrUnregisteredComponent = eris.New("disposable component is not registered")
	ErrEmptyGroup            = eris.New("component group requires at least one component")
	ErrNilSystem             = eris.New("system is nil")
	ErrSystemExists          = eris.New("system already added")
)
