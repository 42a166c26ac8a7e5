// Package matches loads per-match statistics and prepares them for analysis.
//
// A Table holds one MatchRecord per fixture in file order. Tables come from
// CSV files or XLSX workbooks:
//
//	table, err := matches.Load("spurs.csv", matches.DefaultLoadOptions())
//
// The date and primary metric columns are required; a missing one yields a
// *MissingColumnError. The secondary metric column is optional.
//
// Clean keeps the rows that have a primary metric, in order:
//
//	cleaned := matches.Clean(table)
//	xg := cleaned.Primary()    // *timeseries.Series, index = sequence position
//	xga := cleaned.Secondary()
package matches
