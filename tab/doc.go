package tab

// Package tab is the in-memory table engine behind tabjoin. The engine is
// deliberately small and works in 4 phases, each one a free function over
// the *Table* type:
//
// 1) Load
//    The whole input file is mapped (or read) as one immutable byte region,
//    then cut into lines. Each non empty line is copied into a buffer owned
//    by its Record and split on the delimiter into at most MaxFields field
//    slices. Surplus columns are dropped, they are *not* an error. Once the
//    table is built the byte region is unmapped, records never alias it.
//
// 2) Sort
//    In place comparison sort on a caller chosen 1-based key column. A
//    record that is too short for the key column sorts as the empty string.
//    The sort is not stable, equal keys keep no particular order, which is
//    fine since the joiner only cares about *runs* of equal keys.
//
// 3) Join
//    Classic sort-merge equi-join over two pre-sorted tables. On a key
//    match the maximal run of that key is found on both sides and the full
//    cross product of the two runs is emitted, left run major. The output
//    line layout is load bearing for the caller:
//
//      key , left fields (key column removed) , right fields (key column removed)
//
//    downstream stages re-sort and re-join on a *column position* of this
//    output, so the layout must never change.
//
// 4) Write
//    Fields rejoined with the delimiter, one record per line, in whatever
//    order the table currently has. No re-sort, no header, no quoting.
//
// Key comparison everywhere is byte-wise: "01" and "1" are different keys.
// Every table has a hard record capacity, overflowing it is a fatal error
// for the run, never a resize.
