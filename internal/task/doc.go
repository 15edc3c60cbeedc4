// Package task runs batches of simulations on a bounded worker pool.
// Each scenario becomes a SimulationTask with its own ID; the Runner feeds
// them through a TaskQueue to the WorkerPool and collects one Outcome per
// scenario in input order, so a failing scenario never aborts the batch.
package task
