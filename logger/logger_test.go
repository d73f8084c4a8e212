package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerQueuesLines(t *testing.T) {
	l := Init()

	l.Print("hello")
	l.Printf("position %d", 12)
	l.PrintError("Fetch", errors.New("boom"))

	assert.Equal(t, "hello", <-l.Prints)
	assert.Equal(t, "position 12", <-l.Prints)
	assert.Equal(t, "Error(Fetch) -> boom", <-l.Prints)
}
