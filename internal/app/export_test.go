package app

import "time"

func SetLoggerClock(l *FileLogger, now func() time.Time) { l.now = now }
