package logger

// Logger is the logging capability used across the scan pipeline. Components
// pass their name explicitly so log output can be filtered per stage.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop discards all log output. Used in tests and as a safe default when no
// logger is supplied.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Debug(component, message string, fields map[string]interface{})   {}
func (Nop) Info(component, message string, fields map[string]interface{})    {}
func (Nop) Warning(component, message string, fields map[string]interface{}) {}
func (Nop) Error(component string, err error, fields map[string]interface{}) {}
