package game

import "fmt"

type CommandKind int

const (
	CommandReset CommandKind = iota
	CommandResize
)

func (k CommandKind) String() string {
	switch k {
	case CommandReset:
		return "Reset"
	case CommandResize:
		return "Resize"
	}
	return "Unknown"
}

// Command is a board-level request from the UI. Resize fields left at zero
// keep the current board's value.
type Command struct {
	Kind        CommandKind
	Width       int
	Height      int
	Denominator int
}

func ResetCommand() Command {
	return Command{Kind: CommandReset}
}

func ResizeCommand(width, height, denominator int) Command {
	return Command{
		Kind:        CommandResize,
		Width:       width,
		Height:      height,
		Denominator: denominator,
	}
}

func (c Command) String() string {
	switch c.Kind {
	case CommandResize:
		return fmt.Sprintf("Resize{width=%d height=%d denominator=%d}", c.Width, c.Height, c.Denominator)
	default:
		return c.Kind.String()
	}
}
