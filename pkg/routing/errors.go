package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate means an origin or destination fell outside the
	// road network's bounding box. Rejected before any search runs.
	ErrInvalidCoordinate = errors.New("coordinate outside the road network")

	// ErrNoRoutableNode means the graph has no geolocated node with an
	// incident edge to snap a coordinate to.
	ErrNoRoutableNode = errors.New("no routable node in the road network")
)

// NoPathFoundError means no connecting path exists between the two snapped
// endpoint nodes.
type NoPathFoundError struct {
	From int64
	To   int64
}

func (e *NoPathFoundError) Error() string {
	return fmt.Sprintf("no path found from node %d to node %d", e.From, e.To)
}
