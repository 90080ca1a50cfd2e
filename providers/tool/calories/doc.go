// Package calories provides the calculate_calories_burned tool.
//
// The estimate uses the MET (Metabolic Equivalent of Task) method:
//
//	calories = MET × weight_kg × duration_hours
//
// with MET values from a fixed table of ten activities.
package calories
