// Package competence converts simulation outcomes into skill progression
// across the five competence tracks: water, npk, soil, rotation and nasa.
//
// Gains are computed from fixed tables. Accumulating them into capped
// totals is the job of the progress package.
package competence
