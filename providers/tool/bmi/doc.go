// Package bmi provides the calculate_bmi tool, which computes body mass index
// from weight in kilograms and height in centimeters and classifies it.
package bmi
