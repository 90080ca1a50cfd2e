// Package workout provides the create_workout_plan tool, a lookup of training
// focus and weekly schedule by fitness level and goal, adjusted to the number
// of days available.
package workout
