// Package tabular reads the delimited text inputs of the epinet tools:
// contact edge lists, numeric sample matrices and (t, f) time series.
//
// All readers share one set of options: field delimiter (default ','),
// comment character (default '#', lines starting with it are skipped) and
// whether the first record is a header to discard.
//
//	contacts, err := tabular.ReadContacts(f, tabular.WithHeader(true))
//
// Parse failures are reported as ErrMalformed wrapped with the 1-based
// record number and field, so callers can point users at the bad line.
package tabular
