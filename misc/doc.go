// Package misc collects small standalone utilities: an epsilon-aware
// float comparison (the same convention flow.FlowOptions.Epsilon
// follows; flow keeps its own copy and does not import misc) and
// Floyd's tortoise-and-hare cycle detector over a generic "next"
// function. No other package of the module imports misc.
package misc
