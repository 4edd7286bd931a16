package wasm

import (
	"io"
	"os"
)

func defaultErrStream() io.Writer { return os.Stderr }
