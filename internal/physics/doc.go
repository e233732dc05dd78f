// Package physics provides the pure kinematics for the spring engine.
//
// Two value types model one scalar degree of freedom:
//
//   - [Body]: position, velocity, accumulated pending force, inverse mass
//   - [Spring]: damped restoring force toward a rest point
//
// Integration is fixed-step: [Body.Step] advances exactly one unit of
// simulated time and consumes the pending force. Forces from any number
// of sources can be summed into the body with [Body.ApplyForce] before
// a step; the current engine wires a single spring source.
//
// All operations are deterministic and free of ambient state: the same
// inputs always produce bit-identical outputs.
package physics
