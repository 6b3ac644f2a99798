// Package robot provides the Robot entity: a delivery robot that tasks are assigned to.
//
// Robots are created on first reference by a task (from inline data) and are
// read-only afterwards. Battery is expected to be a percentage but is not
// range-checked here; the fleet reports whatever the hardware reports.
package robot
