package task_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// completionHolds checks completedAt != nil iff status is COMPLETED.
func completionHolds(tk *task.Task) bool {
	return tk.IsCompleted() == (tk.CompletedAt() != nil)
}

func TestTask_CompletionInvariantProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	statuses := gen.OneConstOf("ASSIGNED", "IN_PROGRESS", "COMPLETED", "FAILED")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("every sequence of updates keeps completedAt in step with status", prop.ForAll(
		func(initial string, updates []string, withTimestamp []bool) bool {
			id, _ := kernel.ParseID("T1")
			pkgID, _ := kernel.ParseID("P1")
			robotID, _ := kernel.ParseID("R1")

			tk, err := task.NewTask(id, pkgID, robotID, task.Status(initial), nil, base)
			if err != nil || !completionHolds(tk) {
				return false
			}

			for i, raw := range updates {
				s := task.Status(raw)
				ch := task.Changes{Status: &s}
				if i < len(withTimestamp) && withTimestamp[i] {
					ts := base.Add(time.Duration(i) * time.Minute)
					ch.CompletedAt = &ts
				}

				err = tk.Apply(ch, base.Add(time.Hour))
				if err != nil && s.IsCompleted() {
					return false
				}
				if !completionHolds(tk) {
					return false
				}
			}
			return true
		},
		statuses,
		gen.SliceOf(statuses),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("Complete succeeds exactly once", prop.ForAll(
		func(initial string, attempts int) bool {
			id, _ := kernel.ParseID("T1")
			pkgID, _ := kernel.ParseID("P1")
			robotID, _ := kernel.ParseID("R1")

			tk, err := task.NewTask(id, pkgID, robotID, task.Status(initial), nil, base)
			if err != nil {
				return false
			}

			successes := 0
			if !tk.IsCompleted() {
				successes = -1
			}
			for range attempts {
				if tk.Complete(base) == nil {
					successes++
				}
			}
			// already completed tasks never succeed, others succeed once
			return successes == 0 && completionHolds(tk)
		},
		statuses,
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
