// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DocumentScan is the predicate function for documentscan builders.
type DocumentScan func(*sql.Selector)

// ExtractedData is the predicate function for extracteddata builders.
type ExtractedData func(*sql.Selector)

// GeneratedCV is the predicate function for generatedcv builders.
type GeneratedCV func(*sql.Selector)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)
