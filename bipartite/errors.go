package bipartite

import "errors"

// ErrNotBipartite indicates TwoColor found an odd cycle.
var ErrNotBipartite = errors.New("bipartite: graph is not bipartite")
