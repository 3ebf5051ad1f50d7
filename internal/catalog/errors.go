package catalog

import "fmt"

// PathNotConvertibleError reports a path that holds no category segment, or
// too few segments after it to form an event name.
type PathNotConvertibleError struct {
	Path string
}

func (e *PathNotConvertibleError) Error() string {
	return fmt.Sprintf("could not build a sound event from this path: %s", e.Path)
}

// EventNotInCatalogError reports an event name that was built from a path but
// is not a known sound event.
type EventNotInCatalogError struct {
	Name string
	Path string
}

func (e *EventNotInCatalogError) Error() string {
	return fmt.Sprintf("the constructed event name (%s) was not found in catalog", e.Name)
}
