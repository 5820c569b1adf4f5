package domain

type RefreshResult struct {
	ExecID    string
	Total     int
	Succeeded int
	Failed    int
	Failures  []RecordError
}
