// Package airquality classifies pollutant concentrations and AQI values into
// status bands and derives the health guidance and alerts attached to them.
//
// Every classification is a total function: any float64, NaN included, maps
// to exactly one Status. Each band includes its upper bound.
package airquality
