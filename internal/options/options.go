// Package options contains the program options.
package options

// Display modes.
const (
	DisplayInline   = "inline"
	DisplayExternal = "external"
)

// DefaultRate is the default number of instructions executed per second.
const DefaultRate = 500

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input program image"`
	Wav   string `flag:"wav" usage:"record the sound timer beep to a .wav file"`
}

// Flags contains behavior options.
type Flags struct {
	Rate    int    `flag:"rate" usage:"instructions per second, 0 runs unthrottled" default:"500"`
	Cycles  uint64 `flag:"cycles" usage:"stop after this many instructions, 0 runs until exit"`
	Display string `flag:"display" usage:"display mode: inline, external" default:"inline"`
	Trace   bool   `flag:"trace" usage:"log every executed instruction"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Quiet   bool   `flag:"q" usage:"quiet mode"`
}

// Quirks contains interpreter compatibility options.
type Quirks struct {
	ShiftUsesVx bool `flag:"shift-vx" usage:"shift instructions shift Vx in place instead of Vy"`
	KeepIndex   bool `flag:"keep-index" usage:"register block transfers leave I unchanged"`
}

// Program options of the virtual machine.
type Program struct {
	Parameters
	Flags
	Quirks
}

// Disassembler options of the listing tool.
type Disassembler struct {
	Input  string `flag:"i" usage:"input program image"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}
