package commands

import (
	"os"

	"citystore/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("citystore error", "err", err.Error())
	os.Exit(1)
}
