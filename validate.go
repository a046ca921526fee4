package twitter

import "strings"

// DefaultCount is the page size used by the CLI and documented upstream default.
const DefaultCount = 20

const (
	maxTimelineCount = 200
	maxSearchCount   = 100
)

// ResultType is the upstream relevance ordering for search.
type ResultType string

const (
	ResultRecent  ResultType = "recent"
	ResultPopular ResultType = "popular"
	ResultMixed   ResultType = "mixed"
)

// normalizeUsername strips leading '@' characters and rejects empty handles.
func normalizeUsername(username string) (string, error) {
	name := strings.TrimLeft(username, "@")
	if name == "" {
		return "", validationError("username must not be empty")
	}
	return name, nil
}

// checkCountRange enforces 1 <= count <= limit.
func checkCountRange(count, limit int) error {
	if count < 1 || count > limit {
		return validationError("count must be an integer between 1 and %d, got %d", limit, count)
	}
	return nil
}

// checkCountPositive enforces count >= 1.
func checkCountPositive(count int) error {
	if count < 1 {
		return validationError("count must be a positive integer, got %d", count)
	}
	return nil
}

// resolveResultType maps "" to ResultRecent and rejects unknown values.
func resolveResultType(rt ResultType) (ResultType, error) {
	switch rt {
	case "":
		return ResultRecent, nil
	case ResultRecent, ResultPopular, ResultMixed:
		return rt, nil
	}
	return "", validationError("result type must be one of %q, %q, %q, got %q", ResultRecent, ResultPopular, ResultMixed, string(rt))
}
