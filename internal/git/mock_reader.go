package git

import "context"

// MockHistoryReader is a test double for HistoryReader.
// It returns predefined tags and commits and records every query it receives.
type MockHistoryReader struct {
	TagList    []string
	TagsErr    error
	Commits    []Commit
	CommitsErr error

	TagsCalls    int
	CommitsCalls []RangeQuery
}

// RangeQuery records the arguments of one CommitsBetween call.
type RangeQuery struct {
	From string
	To   string
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(tags []string, commits []Commit) *MockHistoryReader {
	return &MockHistoryReader{
		TagList: tags,
		Commits: commits,
	}
}

// Tags returns the predefined tags or error.
func (m *MockHistoryReader) Tags(_ context.Context) ([]string, error) {
	m.TagsCalls++
	if m.TagsErr != nil {
		return nil, m.TagsErr
	}
	return m.TagList, nil
}

// CommitsBetween returns the predefined commits or error.
func (m *MockHistoryReader) CommitsBetween(_ context.Context, from, to string) ([]Commit, error) {
	m.CommitsCalls = append(m.CommitsCalls, RangeQuery{From: from, To: to})
	if m.CommitsErr != nil {
		return nil, m.CommitsErr
	}
	return m.Commits, nil
}

// Compile-time interface conformance check.
var _ HistoryReader = (*MockHistoryReader)(nil)
