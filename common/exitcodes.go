package common

type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Log("%v", it.Message)
	}
}
