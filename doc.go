/*
Package lrn reads and writes LRN files, a small tab-separated format for
numeric datasets with a metadata header.

An LRN file starts with optional comment lines beginning with '#',
followed by four header records beginning with '%': the number of rows,
the number of columns, the column type codes and the column names. The
data rows follow, one case per line with tab-separated decimal numbers.

	# Fisher iris sample
	% 2
	% 3
	% 9	1	1
	% Key	Sepal Length	Sepal Width
	1	5.1	3.5
	2	4.9	3

Column type codes are 9 for the unique integer key, 1 for data and 0 for
columns to ignore. Decimal numbers always use '.' as the separator.

Reading and writing files:

	ds, err := lrn.ReadFile("iris.lrn")
	if err != nil {
		// handle error
	}
	// ds.Data holds the matrix, key column included; ds.Key the keys.

	if err := lrn.WriteFile("copy.lrn", ds); err != nil {
		// handle error
	}

A Dataset for a bare matrix gets default metadata from New:

	ds, err := lrn.New([][]float64{{10, 20}, {30, 40}})
	// ds.ColumnTypes == [key data], ds.Names == [C1 C2], ds.Key == [1 2]

Marshal, Unmarshal, NewEncoder and NewDecoder work on byte slices and
streams. Numbers are written in the shortest plain decimal form that reads
back to the identical float64, so a dataset read from a file survives a
write and a second read unchanged.

Errors are either a *FormatError for malformed content or an invalid
Dataset, or an *IOError for file system and stream failures. Passing a
nil reader, a nil dataset or an invalid Option is reported with a plain
error instead. WriteFile
validates and renders the whole file before touching the file system and
by default replaces the target atomically.
*/
package lrn
