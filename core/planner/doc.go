// Package planner implements daily pet-care scheduling. It sorts tasks
// under a named policy, greedily packs them into the owner's time
// budget, assigns back-to-back time slots and detects overlapping
// schedules. All operations are synchronous and side-effect-free apart
// from the explicit slot assignment on tasks.
package planner
