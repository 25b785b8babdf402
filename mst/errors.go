package mst

import "errors"

// ErrInvalidGraph indicates g is directed or unweighted; MST is only
// defined over undirected, weighted graphs.
var ErrInvalidGraph = errors.New("mst: graph must be undirected and weighted")

// ErrDisconnected indicates g has more than one connected component, so
// no spanning tree exists.
var ErrDisconnected = errors.New("mst: graph is not connected")
