// Package simulation is the driver that owns one run's Arena, Queue, and
// dependency Graph as explicit values (spec §9: "no process-wide globals"),
// runs the staged initialization pass, then the superdense-time event
// loop, and reports run statistics.
//
// Configuration is exclusively functional options (With*), in the
// teacher's dijkstra.Option / core.GraphOption style, never flag parsing
// or environment variables (spec §1 EXPANSION, §6 EXPANSION).
package simulation
