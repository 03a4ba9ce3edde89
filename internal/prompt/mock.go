// internal/prompt/mock.go
package prompt

// Answer is one scripted reply. A non-nil Err is returned instead of Value.
type Answer struct {
	Value string
	Err   error
}

// MockPrompter replays scripted answers. Once a script runs out every
// further prompt is cancelled.
type MockPrompter struct {
	Answers  []Answer
	Files    []Answer
	Confirms []bool

	Asked      []Question
	FilesAsked []FileQuestion
	Confirmed  []string
}

func NewMockPrompter(answers ...string) *MockPrompter {
	m := &MockPrompter{}
	for _, a := range answers {
		m.Answers = append(m.Answers, Answer{Value: a})
	}
	return m
}

func (m *MockPrompter) Ask(q Question) (string, error) {
	m.Asked = append(m.Asked, q)
	if len(m.Answers) == 0 {
		return "", ErrCancelled
	}
	a := m.Answers[0]
	m.Answers = m.Answers[1:]
	if a.Err != nil {
		return "", a.Err
	}
	if a.Value == "" {
		return q.Default, nil
	}
	return a.Value, nil
}

func (m *MockPrompter) PickFile(q FileQuestion) (string, error) {
	m.FilesAsked = append(m.FilesAsked, q)
	if len(m.Files) == 0 {
		return "", ErrCancelled
	}
	a := m.Files[0]
	m.Files = m.Files[1:]
	return a.Value, a.Err
}

func (m *MockPrompter) Confirm(label string, def bool) (bool, error) {
	m.Confirmed = append(m.Confirmed, label)
	if len(m.Confirms) == 0 {
		return def, nil
	}
	c := m.Confirms[0]
	m.Confirms = m.Confirms[1:]
	return c, nil
}
