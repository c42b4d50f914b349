package errors

// ErrorCode classifies a failure; labels are stable for log queries
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeUnavailable
	ErrorCodeConflict
	ErrorCodeInvalidArgument
	ErrorCodeValidation
	ErrorCodeNotFound
	ErrorCodeDuplicateKey
	ErrorCodeDB
)

var codeInfo = [...]struct {
	label string
	exit  int
}{
	ErrorCodeUnknown:         {"unknown", 1},
	ErrorCodeUnavailable:     {"unavailable", 3},
	ErrorCodeConflict:        {"conflict", 1},
	ErrorCodeInvalidArgument: {"invalid_argument", 2},
	ErrorCodeValidation:      {"validation", 2},
	ErrorCodeNotFound:        {"not_found", 1},
	ErrorCodeDuplicateKey:    {"duplicate_key", 1},
	ErrorCodeDB:              {"db", 3},
}

func (c ErrorCode) String() string {
	if int(c) >= len(codeInfo) {
		return codeInfo[ErrorCodeUnknown].label
	}
	return codeInfo[c].label
}

// ExitCode maps err to a process status: 0 on nil, 2 for bad invocation,
// 3 when a dependency is down and 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	c := CodeOf(err)
	if int(c) >= len(codeInfo) {
		return 1
	}
	return codeInfo[c].exit
}
