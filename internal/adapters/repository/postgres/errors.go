package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// undefinedTable is the SQLSTATE postgres reports for a missing relation.
const undefinedTable pq.ErrorCode = "42P01"

// isUndefinedTable reports whether err comes from querying a table that was
// never created. Readers treat that as an empty collection.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == undefinedTable
}
