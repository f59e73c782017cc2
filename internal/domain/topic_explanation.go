package domain

// TopicExplanation is the result of a teach-topic request. It is a pure
// request/response value and is never persisted. Missing fields from the
// model are filled with empty values of the right kind rather than failing,
// since nothing is stored.
type TopicExplanation struct {
	Topic       string   `json:"topic"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
	Resources   []string `json:"resources"`
}
