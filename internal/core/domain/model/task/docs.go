// Package task provides the Task aggregate root: the assignment of one package to
// one robot, and the lifecycle of that assignment.
//
// The package includes:
//   - Task: the aggregate with its links, status and completion timestamp
//   - Status: a free-form status string with COMPLETED as the only special value
//   - Changes: the administrative overwrite applied by Task.Apply
//
// Key business rules:
//   - A Task always links a package id and a robot id
//   - completedAt is set if and only if the status is COMPLETED
//   - Complete is guarded: completing an already completed task fails with
//     ErrAlreadyCompleted and leaves completedAt untouched
//   - Apply is a permissive overwrite; it only re-establishes the completion invariant
package task
