package logger

import (
	"go.uber.org/zap"
)

var l *zap.Logger = zap.NewNop()

// Init builds the process logger. Development mode uses the human-readable
// console encoder; production emits JSON.
func Init(isDev bool) error {
	var (
		log *zap.Logger
		err error
	)
	if isDev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	l = log
	return nil
}

func L() *zap.Logger { return l }

func Sync() {
	_ = l.Sync()
}
