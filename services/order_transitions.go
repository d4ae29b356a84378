package services

import "github.com/Bhupesh2sharma/PRoject-Rapidine/entity"

// Forward-only lifecycle, with cancel reachable from any non-terminal state.
// delivered and cancelled are terminal.
var orderTransitions = map[string][]string{
	entity.OrderStatusPending:   {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing: {entity.OrderStatusReady, entity.OrderStatusCancelled},
	entity.OrderStatusReady:     {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
	entity.OrderStatusDelivered: {},
	entity.OrderStatusCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
