package logging

type nilLogger struct{}

func (n nilLogger) Level() int {
	return 0
}

func (n nilLogger) Info(s string) {}

func (n nilLogger) Debug(s string) {}

func (n nilLogger) Trace(s string) {}

func (n nilLogger) ErrorFromErr(e error) {}

func (n nilLogger) ErrorFromString(s string) {}

func (n nilLogger) PanicFromErr(e error) {}

func (n nilLogger) PanicFromString(s string) {}

func (n nilLogger) Flush() {}
