package global

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

var logger = hclog.New(&hclog.LoggerOptions{
	Name:   "azrm",
	Level:  hclog.Info,
	Output: os.Stderr,
})

func Logger() hclog.Logger {
	return logger
}

func SetLogLevel(level hclog.Level) {
	logger.SetLevel(level)
}
