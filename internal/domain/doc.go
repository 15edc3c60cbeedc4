// Package domain contains the core business entities, value objects, and
// domain errors of the crop simulator: crop reference profiles, simulation
// inputs and results, advisories and competence gains. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
