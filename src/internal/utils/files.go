package utils

import (
	"io"

	"github.com/maksimkurb/quick-nav/src/internal/log"
)

func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close: %v", err)
	}
}
