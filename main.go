package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/fig/utils/collections"
)

func main() {
	logger := log.WithFields(log.Fields{"app": "fig"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.DebugLevel)
	collections.SetLogger(logger.WithField("component", "collections"))

	h := collections.NewHash[string, int]()
	for _, e := range []collections.Entry[string, int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 1}} {
		if _, err := h.Set(e.Key, e.Value); err != nil {
			logger.WithError(err).Error("set failed")
			os.Exit(1)
		}
	}
	logger.Info("hash ", h)
	logger.Info("keys of 1 ", h.KeysOf(1).Entries())
	logger.Info("inverted ", collections.Invert(h))
	logger.Info("filtered ", h.Filter(func(k string, v int) bool {
		return v > 1
	}))
	if _, err := h.RejectInPlace(func(k string, v int) bool {
		return v == 1
	}); err != nil {
		logger.WithError(err).Error("reject failed")
		os.Exit(1)
	}
	logger.Info("after reject in place ", h)
}
