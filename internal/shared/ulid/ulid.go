package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRequestID returns a lexically sortable request id. Ids generated by one process sort in
// generation order, so request logs can be ordered by id alone.
var NewRequestID = func() string {
	return ulid.Make().String()
}
